package models

// DefaultContestants returns the seed roster used until the contestant
// collection is first written. A fresh slice is returned on every call.
func DefaultContestants() []Contestant {
	return []Contestant{
		{ID: "1", Name: "Zenix FX", Thumbnail: "https://picsum.photos/seed/editor1/600/400", Votes: 124, VideoURL: "#"},
		{ID: "2", Name: "Motion King", Thumbnail: "https://picsum.photos/seed/editor2/600/400", Votes: 89, VideoURL: "#"},
		{ID: "3", Name: "Nova Edits", Thumbnail: "https://picsum.photos/seed/editor3/600/400", Votes: 256, VideoURL: "#"},
		{ID: "4", Name: "Vortex VFX", Thumbnail: "https://picsum.photos/seed/editor4/600/400", Votes: 167, VideoURL: "#"},
	}
}

// GiftPackages returns the fixed vote package catalog.
func GiftPackages() []GiftPackage {
	return []GiftPackage{
		{ID: "1", Name: "STARTER PACK", Stars: 1, Votes: 2},
		{ID: "2", Name: "PREMIUM PACK", Stars: 15, Votes: 35, Highlighted: true},
		{ID: "3", Name: "ELITE PACK", Stars: 50, Votes: 125},
		{ID: "4", Name: "WHALE PACK", Stars: 100, Votes: 300},
	}
}

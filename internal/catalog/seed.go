package catalog

import "lightlock/internal/gallery"

const unsplash = "https://images.unsplash.com/"

func gridImage(id int, photo, alt string, height int) gallery.ImageRecord {
	return gallery.ImageRecord{
		ID:        id,
		SourceURL: unsplash + photo + "?auto=format&w=800&q=75",
		AltText:   alt,
		Width:     800,
		Height:    height,
	}
}

func featuredImage(id int, photo, alt string) gallery.ImageRecord {
	return gallery.ImageRecord{
		ID:        id,
		SourceURL: unsplash + photo + "?auto=format&w=1200&q=80",
		AltText:   alt,
		Width:     1200,
		Height:    800,
	}
}

// SampleImages is the masonry grid content, in display order.
var SampleImages = []gallery.ImageRecord{
	gridImage(1, "photo-1506744038136-46273834b3fb", "Landscape with mountains and lake", 533),
	gridImage(2, "photo-1511300636408-a63a89df3482", "City skyline at night", 533),
	gridImage(3, "photo-1501854140801-50d01698950b", "Beach with palm trees", 533),
	gridImage(4, "photo-1441974231531-c6227db76b6e", "Forest with sunlight", 533),
	gridImage(5, "photo-1470071459604-3b5ec3a7fe05", "Mountain landscape", 533),
	gridImage(6, "photo-1472214103451-9374bd1c798e", "Field with sunset", 533),
	gridImage(7, "photo-1464822759023-fed622ff2c3b", "Mountain peak", 533),
	gridImage(8, "photo-1500534314209-a25ddb2bd429", "Desert landscape", 533),
	gridImage(9, "photo-1516483638261-f4dbaf036963", "Italian coastal village", 1200),
	gridImage(10, "photo-1523906834658-6e24ef2386f9", "Venice canal with gondolas", 533),
	gridImage(11, "photo-1533105079780-92b9be482077", "Santorini white buildings with blue domes", 1200),
	gridImage(12, "photo-1534447677768-be436bb09401", "Northern lights over mountains", 533),
	gridImage(13, "photo-1520962922320-2038eebab146", "Colorful autumn forest", 600),
	gridImage(14, "photo-1476514525535-07fb3b4ae5f1", "Foggy mountain valley", 533),
	gridImage(15, "photo-1502657877623-f66bf489d236", "Night sky with stars", 533),
	gridImage(16, "photo-1506953823976-52e1fdc0149a", "Waterfall in lush forest", 1200),
	gridImage(17, "photo-1504567961542-e24d9439a724", "Lavender fields at sunset", 533),
	gridImage(18, "photo-1465146344425-f00d5f5c8f07", "Tropical beach with clear water", 600),
	gridImage(19, "photo-1484591974057-265bb767ef71", "Architectural detail of modern building", 1200),
	gridImage(20, "photo-1501785888041-af3ef285b470", "Road through autumn forest", 533),
}

// FeaturedImages feed the carousel at the top of the gallery.
var FeaturedImages = []gallery.ImageRecord{
	featuredImage(101, "photo-1470770841072-f978cf4d019e", "Mountain lake reflection"),
	featuredImage(102, "photo-1505852679233-d9fd70aff56d", "Sunset over ocean"),
	featuredImage(103, "photo-1499678329028-101435549a4e", "Beach with palm trees aerial view"),
	featuredImage(104, "photo-1493246507139-91e8fad9978e", "Countryside with rolling hills"),
	featuredImage(105, "photo-1518098268026-4e89f1a2cd8e", "Dramatic mountain peaks"),
}

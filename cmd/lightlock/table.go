package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"lightlock/internal/gallery"
)

func filterImages(images []gallery.ImageRecord, category, query string) []gallery.ImageRecord {
	if !gallery.IsCategory(category) {
		pterm.Warning.Printf("Unknown category %q, showing all\n", category)
		category = gallery.CategoryAll
	}
	return gallery.Filter(images, category, query)
}

func renderImages(images []gallery.ImageRecord) error {
	if len(images) == 0 {
		pterm.Warning.Println("No images.")
		return nil
	}

	data := pterm.TableData{{"ID", "Size", "Orientation", "Alt text"}}
	for _, img := range images {
		data = append(data, []string{
			fmt.Sprint(img.ID),
			fmt.Sprintf("%dx%d", img.Width, img.Height),
			string(img.Orientation()),
			img.AltText,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

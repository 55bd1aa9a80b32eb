package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/qeesung/image2ascii/convert"
	"github.com/spf13/cobra"

	"lightlock/internal/auth"
	"lightlock/internal/catalog"
	"lightlock/internal/config"
	"lightlock/internal/database"
	"lightlock/pkg/utils"
)

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the demo accounts accepted by the login page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := auth.NewVerifier(0)

			data := pterm.TableData{{"ID", "Email", "Password", "Name"}}
			for _, u := range v.Users() {
				pw, _ := v.DemoPassword(u.Email)
				data = append(data, []string{u.ID, u.Email, pw, u.Name})
			}
			return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
		},
	}
}

func newImagesCmd() *cobra.Command {
	var category, query string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "List the gallery catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd.Context(), func(ctx context.Context, repo *catalog.Repository) error {
				grid, err := repo.Grid(ctx)
				if err != nil {
					return err
				}
				featured, err := repo.Featured(ctx)
				if err != nil {
					return err
				}

				pterm.DefaultSection.Println("Featured")
				if err := renderImages(featured); err != nil {
					return err
				}

				shown := filterImages(grid, category, query)
				pterm.DefaultSection.Printf("Gallery (%d of %d)\n", len(shown), len(grid))
				return renderImages(shown)
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category filter (all, landscape, city, nature, architecture)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive alt text search")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var width int
	var colored bool

	cmd := &cobra.Command{
		Use:   "preview <id>",
		Short: "Print an image's placeholder as ASCII art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid image id %q", args[0])
			}

			return withCatalog(cmd.Context(), func(ctx context.Context, repo *catalog.Repository) error {
				img, err := repo.Get(ctx, id)
				if err != nil {
					return err
				}

				placeholder := utils.Placeholder(utils.PlaceholderOptions{
					Seed:   img.AltText,
					Label:  fmt.Sprintf("#%d", img.ID),
					Width:  img.Width,
					Height: img.Height,
				})

				opts := convert.DefaultOptions
				opts.FixedWidth = width
				// Terminal cells are about twice as tall as wide.
				opts.FixedHeight = max(width*img.Height/max(img.Width, 1)/2, 1)
				opts.Colored = colored

				pterm.Info.Printf("#%d %s (%dx%d, %s)\n", img.ID, img.AltText, img.Width, img.Height, img.Orientation())
				fmt.Print(convert.NewImageConverter().Image2ASCIIString(placeholder, &opts))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 60, "Output width in characters")
	cmd.Flags().BoolVar(&colored, "color", true, "Colour the output")
	return cmd
}

// withCatalog opens and seeds the configured database for a one-off command.
func withCatalog(ctx context.Context, fn func(context.Context, *catalog.Repository) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.InitDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer database.Close(db)

	repo := catalog.NewRepository(db)
	if _, err := repo.Seed(ctx); err != nil {
		return err
	}
	return fn(ctx, repo)
}

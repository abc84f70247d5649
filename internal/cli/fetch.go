package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toolradar/pkg/dataset"
)

// fetchCommand creates the fetch command for retrieving shared datasets.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		mongoURI string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "fetch [name]",
		Short: "Fetch a published dataset from the shared store",
		Long: `Fetch a published dataset from the shared store.

With a name, the dataset is written as TOML (to stdout or --output). Without
arguments, all published datasets are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runFetchList(cmd.Context(), mongoURI)
			}
			return c.runFetch(cmd.Context(), mongoURI, args[0], output)
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo", "mongodb://localhost:27017", "MongoDB URI of the shared store")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runFetch(ctx context.Context, mongoURI, name, output string) error {
	store, err := dataset.NewStore(ctx, dataset.StoreConfig{URI: mongoURI})
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	ds, err := store.FetchStored(ctx, name)
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(ds); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	if output != "" {
		printSuccess("Fetched %q (%d tools)", name, len(ds.Tools))
		printFile(output)
		printNextStep("Render it", fmt.Sprintf("toolradar render %s", output))
	}
	return nil
}

func (c *CLI) runFetchList(ctx context.Context, mongoURI string) error {
	store, err := dataset.NewStore(ctx, dataset.StoreConfig{URI: mongoURI})
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	infos, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		printInfo("No published datasets")
		return nil
	}

	for _, info := range infos {
		title := info.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Println(StyleHighlight.Render(info.Name) + "  " +
			StyleValue.Render(title) + "  " +
			StyleDim.Render(info.UpdatedAt.Format(time.RFC3339)))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toolradar/pkg/dataset"
)

// publishCommand creates the publish command for sharing datasets.
func (c *CLI) publishCommand() *cobra.Command {
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "publish [name] [dataset.toml]",
		Short: "Publish a dataset to the shared store",
		Long: `Publish a dataset to the shared store.

The publish command validates the dataset and stores it under the given name
in a MongoDB collection, replacing any previous version. Only the raw tool
records are stored; positions are always recomputed on render.

Teammates retrieve it with 'toolradar fetch <name>'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPublish(cmd.Context(), mongoURI, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo", "mongodb://localhost:27017", "MongoDB URI of the shared store")

	return cmd
}

func (c *CLI) runPublish(ctx context.Context, mongoURI, name, path string) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}

	store, err := dataset.NewStore(ctx, dataset.StoreConfig{URI: mongoURI})
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Publishing %s...", name))
	spinner.Start()
	err = store.Publish(ctx, name, ds)
	if err != nil {
		spinner.StopWithError("Publish failed")
		return err
	}
	spinner.Stop()

	printSuccess("Published %q (%d tools)", name, len(ds.Tools))
	printNextStep("Fetch it elsewhere", fmt.Sprintf("toolradar fetch %s", name))
	return nil
}

package cmd

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zeylcoffee/qrmenu/app/configs"
	"github.com/zeylcoffee/qrmenu/app/db/migrations"
	"github.com/zeylcoffee/qrmenu/app/db/seeders"
)

func RunCli(env configs.ENV) {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Copy the JSON database into MongoDB collections",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenMongo(env)
					if err != nil {
						return err
					}
					admin, err := configs.DefaultAdmin(env)
					if err != nil {
						return err
					}
					if err := migrations.MigrateJSONToMongo(ctx, db, env.DBFile, admin); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Load the default admin and menu into an empty store",
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := configs.OpenStore(env)
					if err != nil {
						return err
					}
					admin, err := configs.DefaultAdmin(env)
					if err != nil {
						return err
					}
					if err := seeders.SeedAdmin(ctx, store, admin); err != nil {
						return err
					}
					if err := seeders.SeedMenu(ctx, store); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence"
	"github.com/vantage-crm/vantage/pkg/logging"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to a CSV file",
	}
	cmd.AddCommand(exportLeadsCmd(), exportContactsCmd())
	return cmd
}

func exportLeadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leads <file.csv>",
		Short: "Export all leads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.ConsoleLogger(logrus.InfoLevel)
			return withPool(cmd.Context(), func(ctx context.Context) error {
				leads, err := persistence.NewLeadRepository().GetAll(ctx)
				if err != nil {
					return err
				}
				header := []string{"id", "first_name", "last_name", "email", "phone", "company", "source", "status", "owner", "created_at"}
				rows := make([][]string, 0, len(leads))
				for _, l := range leads {
					rows = append(rows, []string{
						l.ID().String(),
						l.FirstName(),
						l.LastName(),
						l.Email(),
						l.Phone(),
						l.Company(),
						l.Source(),
						string(l.Status()),
						l.OwnerName(),
						l.CreatedAt().Format(time.DateTime),
					})
				}
				if err := writeCSV(args[0], header, rows); err != nil {
					return err
				}
				log.WithField("count", len(rows)).Info("leads exported")
				return nil
			})
		},
	}
}

func exportContactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts <file.csv>",
		Short: "Export all contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.ConsoleLogger(logrus.InfoLevel)
			return withPool(cmd.Context(), func(ctx context.Context) error {
				contacts, err := persistence.NewContactRepository().GetAll(ctx)
				if err != nil {
					return err
				}
				header := []string{"id", "first_name", "last_name", "email", "phone", "job_title", "account_name", "owner", "created_at"}
				rows := make([][]string, 0, len(contacts))
				for _, ct := range contacts {
					rows = append(rows, []string{
						ct.ID().String(),
						ct.FirstName(),
						ct.LastName(),
						ct.Email(),
						ct.Phone(),
						ct.JobTitle(),
						ct.AccountName(),
						ct.OwnerName(),
						ct.CreatedAt().Format(time.DateTime),
					})
				}
				if err := writeCSV(args[0], header, rows); err != nil {
					return err
				}
				log.WithField("count", len(rows)).Info("contacts exported")
				return nil
			})
		},
	}
}

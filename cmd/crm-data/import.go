package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/eventbus"
	"github.com/vantage-crm/vantage/pkg/logging"
)

var leadImportHeader = []string{"first_name", "last_name", "email", "phone", "company", "source"}

var contactImportHeader = []string{"first_name", "last_name", "email", "phone", "job_title", "account_name"}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import records from a CSV file",
	}
	cmd.AddCommand(importLeadsCmd(), importContactsCmd())
	return cmd
}

func importLeadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leads <file.csv>",
		Short: "Import leads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.ConsoleLogger(logrus.InfoLevel)
			return withPool(cmd.Context(), func(ctx context.Context) error {
				rows, err := readCSV(args[0], leadImportHeader)
				if err != nil {
					return err
				}
				svc := services.NewLeadService(
					persistence.NewLeadRepository(),
					eventbus.NewEventPublisher(log),
				)

				imported := 0
				for i, row := range rows {
					dto := &lead.CreateDTO{
						FirstName: row["first_name"],
						LastName:  row["last_name"],
						Email:     row["email"],
						Phone:     row["phone"],
						Company:   row["company"],
						Source:    row["source"],
					}
					if errs, ok := dto.Ok(); !ok {
						return fmt.Errorf("row %d is invalid: %v", i+2, errs)
					}
					if _, err := svc.Create(ctx, dto); err != nil {
						return fmt.Errorf("row %d: %w", i+2, err)
					}
					imported++
				}
				log.WithField("count", imported).Info("leads imported")
				return nil
			})
		},
	}
}

func importContactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts <file.csv>",
		Short: "Import contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.ConsoleLogger(logrus.InfoLevel)
			return withPool(cmd.Context(), func(ctx context.Context) error {
				rows, err := readCSV(args[0], contactImportHeader)
				if err != nil {
					return err
				}
				svc := services.NewContactService(
					persistence.NewContactRepository(),
					eventbus.NewEventPublisher(log),
				)

				imported := 0
				for i, row := range rows {
					dto := &contact.CreateDTO{
						FirstName:   row["first_name"],
						LastName:    row["last_name"],
						Email:       row["email"],
						Phone:       row["phone"],
						JobTitle:    row["job_title"],
						AccountName: row["account_name"],
					}
					if errs, ok := dto.Ok(); !ok {
						return fmt.Errorf("row %d is invalid: %v", i+2, errs)
					}
					if _, err := svc.Create(ctx, dto); err != nil {
						return fmt.Errorf("row %d: %w", i+2, err)
					}
					imported++
				}
				log.WithField("count", imported).Info("contacts imported")
				return nil
			})
		},
	}
}

// Package google constructs Sheets and Drive API clients from a
// service-account credential.
package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Clients bundles the two Google API services the backend talks to.
type Clients struct {
	Sheets *sheets.Service
	Drive  *drive.Service
}

// New authenticates with the raw service-account JSON and builds both
// services on a shared token source.
func New(ctx context.Context, credentialsJSON string) (*Clients, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON),
		sheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}

	sheetsSvc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Clients{Sheets: sheetsSvc, Drive: driveSvc}, nil
}

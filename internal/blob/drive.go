package blob

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

// DriveStore uploads resumes into a fixed Drive folder and opens them up
// with an anyone-reader permission, matching the links the frontend and the
// notification mails already embed.
type DriveStore struct {
	svc      *drive.Service
	folderID string
}

func NewDriveStore(svc *drive.Service, folderID string) *DriveStore {
	return &DriveStore{svc: svc, folderID: folderID}
}

func (d *DriveStore) Upload(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{d.folderID},
	}

	created, err := d.svc.Files.Create(meta).
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload: %w", err)
	}

	_, err = d.svc.Permissions.Create(created.Id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("drive permission: %w", err)
	}

	return fmt.Sprintf("https://drive.google.com/file/d/%s/view?usp=sharing", created.Id), nil
}

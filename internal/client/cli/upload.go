package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// putObject is a test seam for the direct-to-storage PUT.
var putObject = func(ctx context.Context, url string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("storage returned status %d", resp.StatusCode)
	}
	return nil
}

// Upload presigns an image upload for the given local file and pushes the
// bytes straight to object storage. The resulting storage key is printed so
// it can be pasted into a banner or initiative image URL.
func (a *App) Upload(ctx context.Context, args []string) error {
	if !a.ensureAuthorized() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: upload <file>")
		return nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	key, url, err := a.content.PresignUpload(ctx, filepath.Base(path))
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := putObject(ctx, url, data); err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	printlnFn("Uploaded as", key)
	return nil
}

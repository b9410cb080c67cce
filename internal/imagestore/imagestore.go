// Package imagestore implements the image store commands: listing content
// under a store-relative path and deleting it.
package imagestore

import (
	"context"
	"strings"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/paging"
)

// CleanPath normalizes a store-relative path. Backslashes become slashes,
// empty and "." segments are dropped, and ".." segments are rejected.
func CleanPath(p string) (string, error) {
	var segments []string
	for _, seg := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			return "", faults.Usagef("image store path %q must not contain '..'", p)
		}
		segments = append(segments, seg)
	}
	return strings.Join(segments, "/"), nil
}

// List emits the files and folders under remotePath. The listing always
// drains.
func List(ctx context.Context, inv *command.Invocation, remotePath string) error {
	location, err := CleanPath(remotePath)
	if err != nil {
		return err
	}

	q := fabric.ImageStoreQuery{RemoteLocation: location}
	return command.List(ctx, inv, faults.GetImageStoreContentErrorID, paging.Policy{Mode: paging.Drain},
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.ImageStoreItem], error) {
			q.ContinuationToken = token
			return inv.Conn.GetImageStorePage(ctx, q, timeout)
		})
}

// Remove deletes the content at remotePath. Removing the store root is
// refused.
func Remove(ctx context.Context, inv *command.Invocation, remotePath string) error {
	location, err := CleanPath(remotePath)
	if err != nil {
		return err
	}
	if location == "" {
		return faults.Usagef("refusing to remove the image store root")
	}

	ok, err := inv.ShouldProcess(location, "Remove image store content")
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.RemoveApplicationPackageErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.DeleteImageStoreContent(ctx, location, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Image store content %q removed", location)
	return nil
}

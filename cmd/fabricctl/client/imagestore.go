package client

import (
	"context"
	"net/http"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// imageStoreRequest addresses a store path; the root has its own route.
// Store paths keep their slashes, so they travel as a raw path parameter.
func imageStoreRequest(method, location string) request {
	if location == "" {
		return request{method: method, path: "/ImageStore"}
	}
	return request{
		method:    method,
		path:      "/ImageStore/{contentPath}",
		rawParams: map[string]string{"contentPath": location},
	}
}

// GetImageStorePage lists one page of the folders and files under a store
// path, folders first.
func (c *RestConnection) GetImageStorePage(ctx context.Context, query fabric.ImageStoreQuery, timeout time.Duration) (*fabric.PagedList[fabric.ImageStoreItem], error) {
	var result struct {
		ContinuationToken string `json:"ContinuationToken"`
		StoreFiles        []fabric.ImageStoreItem
		StoreFolders      []struct {
			StoreRelativePath string `json:"StoreRelativePath"`
			FileCount         int64  `json:"FileCount,string"`
		}
	}

	rq := imageStoreRequest(http.MethodGet, query.RemoteLocation)
	rq.apiVersion = apiVersionPaged
	rq.query = pageQuery(query.PageQuery)
	rq.result = &result
	if _, err := c.execute(ctx, timeout, rq); err != nil {
		return nil, err
	}

	page := &fabric.PagedList[fabric.ImageStoreItem]{ContinuationToken: result.ContinuationToken}
	for _, folder := range result.StoreFolders {
		page.Items = append(page.Items, fabric.ImageStoreItem{
			StoreRelativePath: folder.StoreRelativePath,
			IsFolder:          true,
			FileCount:         folder.FileCount,
		})
	}
	page.Items = append(page.Items, result.StoreFiles...)
	return page, nil
}

// DeleteImageStoreContent deletes a file or folder from the image store.
func (c *RestConnection) DeleteImageStoreContent(ctx context.Context, path string, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, imageStoreRequest(http.MethodDelete, path))
	return err
}

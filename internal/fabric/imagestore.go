package fabric

import "time"

// ImageStoreQuery lists content under a relative image store path. An empty
// path lists the store root.
type ImageStoreQuery struct {
	PageQuery
	RemoteLocation string
}

// ImageStoreItem is a file or folder in the image store.
type ImageStoreItem struct {
	StoreRelativePath string    `json:"StoreRelativePath"`
	IsFolder          bool      `json:"IsFolder"`
	FileSize          uint64    `json:"FileSize,string,omitempty"`
	FileCount         int64     `json:"FileCount,string,omitempty"`
	ModifiedDate      time.Time `json:"ModifiedDate,omitempty"`
}

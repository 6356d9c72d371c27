package storage

import (
	"fmt"
	"path"
	"time"
)

// DiskStorage reads and writes the library files under one root folder,
// one subfolder per library.
type DiskStorage struct {
	Library    string
	RootFolder string
}

func NewDiskStorage(library, rootFolder string) *DiskStorage {
	return &DiskStorage{
		Library:    library,
		RootFolder: rootFolder,
	}
}

// GetFileName returns the final path and a unique temp path; saves
// write the temp file first and rename over the final one.
func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, ds.Library, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}

func fileDir(fileName string) string {
	return path.Dir(fileName)
}

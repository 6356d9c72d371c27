package storage

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/matst80/slask-photos/pkg/types"
)

const photosFile = "photos.jz"
const prefsFile = "prefs.json"

// LoadCatalog streams the gzipped photo file, one JSON record per line,
// skipping records flagged deleted. A missing file is not an error, the
// library just starts empty.
func (d *DiskStorage) LoadCatalog() ([]types.Photo, error) {
	fileName, _ := d.GetFileName(photosFile)
	file, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.Photo{}, nil
		}
		return nil, err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zipReader.Close()

	decoder := json.NewDecoder(zipReader)
	photos := make([]types.Photo, 0)
	tmp := types.Photo{}
	for err == nil {
		if err = decoder.Decode(&tmp); err == nil {
			if tmp.IsDeleted() {
				continue
			}
			photos = append(photos, tmp)
			tmp = types.Photo{}
		}
	}
	if errors.Is(err, io.EOF) {
		return photos, nil
	}
	return photos, err
}

// SaveCatalog writes the photo records one per line into the gzipped
// file, through a temp file so a crash never truncates the catalog.
func (d *DiskStorage) SaveCatalog(photos []types.Photo) error {
	fileName, tmpFileName := d.GetFileName(photosFile)
	if err := os.MkdirAll(fileDir(fileName), 0o755); err != nil {
		return err
	}

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	defer file.Close()

	zipWriter := gzip.NewWriter(file)
	enc := json.NewEncoder(zipWriter)
	for i := range photos {
		if err = enc.Encode(&photos[i]); err != nil {
			zipWriter.Close()
			return err
		}
	}
	if err = zipWriter.Close(); err != nil {
		return err
	}
	// keep the previous catalog around as a backup
	os.Rename(fileName, fileName+".bak")
	return os.Rename(tmpFileName, fileName)
}

// LoadPreferences reads the persisted default filter state. Missing
// file means no defaults.
func (d *DiskStorage) LoadPreferences() (*types.FilterState, error) {
	fileName, _ := d.GetFileName(prefsFile)
	b, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	prefs := types.NewFilterState()
	if err = json.Unmarshal(b, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (d *DiskStorage) SavePreferences(prefs *types.FilterState) error {
	fileName, tmpFileName := d.GetFileName(prefsFile)
	if err := os.MkdirAll(fileDir(fileName), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(tmpFileName, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpFileName, fileName)
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Сейв - это JSON-слепок забега, сжатый zstd. Формат слепка
// принадлежит движку (engine.SaveState); storage о нем ничего не
// знает и работает с любым сериализуемым значением.

// SaveGame атомарно пишет сжатый слепок на диск: сначала во
// временный файл, затем rename. Полусохраненный файл невозможен.
func SaveGame(path string, snapshot any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("save: %w", err)
	}

	if err := json.NewEncoder(enc).Encode(snapshot); err != nil {
		enc.Close()
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save: %w", err)
	}

	return os.Rename(tmp, path)
}

// LoadGame читает сжатый слепок в переданную структуру.
func LoadGame(path string, into any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer dec.Close()

	if err := json.NewDecoder(dec).Decode(into); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

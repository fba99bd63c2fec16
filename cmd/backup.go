package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
)

// Backup is the JSON document exchanged by import and export: every collection plus the
// net worth history.
type Backup struct {
	finanzas.Data
	History map[string]finanzas.NetWorthSnapshot `json:"netWorthHistory,omitempty"`
}

// DecodeBackup reads a backup. Entities without an id get one.
func DecodeBackup(r io.Reader) (*Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("invalid backup: %w", err)
	}
	b.Normalize()
	return &b, nil
}

// EncodeBackup writes b as indented JSON.
func EncodeBackup(w io.Writer, b *Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ReadBackup loads a backup from a store.
func ReadBackup(s finanzas.Store) (*Backup, error) {
	data, err := finanzas.LoadData(s)
	if err != nil {
		return nil, err
	}
	history, err := finanzas.NetWorthHistory(s)
	if err != nil {
		return nil, err
	}
	return &Backup{Data: data, History: history}, nil
}

// WriteBackup saves a backup into a store. The history is kept when the backup has none.
func WriteBackup(s finanzas.Store, b *Backup) error {
	if err := finanzas.SaveData(s, b.Data); err != nil {
		return err
	}
	if len(b.History) == 0 {
		return nil
	}
	if err := s.Save(finanzas.KeyNetWorthHistory, b.History); err != nil {
		return fmt.Errorf("cannot save net worth history: %w", err)
	}
	return nil
}

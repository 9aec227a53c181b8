package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bank is one entry of the bank directory.
type Bank struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// BankDirectory maps bank codes to display names.
type BankDirectory struct {
	Banks []Bank `yaml:"banks"`

	byCode map[string]Bank
}

// LoadBankDirectory reads the YAML bank directory at path. A missing file
// yields an empty directory.
func LoadBankDirectory(path string) (*BankDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewBankDirectory(nil), nil
		}
		return nil, fmt.Errorf("failed to read bank directory: %w", err)
	}
	return ParseBankDirectory(data)
}

// ParseBankDirectory decodes a YAML bank directory.
func ParseBankDirectory(data []byte) (*BankDirectory, error) {
	var dir BankDirectory
	if err := yaml.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("failed to parse bank directory: %w", err)
	}
	for i, bank := range dir.Banks {
		if strings.TrimSpace(bank.Code) == "" {
			return nil, fmt.Errorf("bank directory entry %d has no code", i)
		}
	}
	return NewBankDirectory(dir.Banks), nil
}

// NewBankDirectory builds a directory from banks. Later duplicates win.
func NewBankDirectory(banks []Bank) *BankDirectory {
	dir := &BankDirectory{
		Banks:  banks,
		byCode: make(map[string]Bank, len(banks)),
	}
	for _, bank := range banks {
		dir.byCode[bank.Code] = bank
	}
	return dir
}

// Name returns the display name for code, if the directory knows it.
func (d *BankDirectory) Name(code string) (string, bool) {
	if d == nil {
		return "", false
	}
	bank, ok := d.byCode[code]
	if !ok || bank.Name == "" {
		return "", false
	}
	return bank.Name, true
}

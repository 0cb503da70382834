package config

import (
	"fmt"

	"github.com/shadeworks/shade/internal/config"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)
	Lock       func(func() error) error
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	Style      domain.Styler
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Unset:      config.Unset,
		Lock:       config.WithLock,
		Get:        config.Get,
		GetAll:     config.GetAll,
		Style:      style.NewStyler(),
		Printf:     fmt.Printf,
		Println:    fmt.Println,
	}
}

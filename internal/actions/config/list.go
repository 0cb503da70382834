package config

import (
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/domain"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	first := true

	for _, section := range domain.ConfigSections() {
		var rows []domain.ConfigKey
		for _, key := range bySection[section] {
			if value, exists := configMap[key.Name]; exists && (value != "" || !key.HideIfEmpty) {
				rows = append(rows, key)
			}
		}
		if len(rows) == 0 {
			continue
		}

		if !first {
			_, _ = deps.Println("")
		}
		first = false

		_, _ = deps.Println(deps.Style.Header(section))
		for _, key := range rows {
			_, _ = deps.Printf("%s=%s\n", key.Name, configMap[key.Name])
		}
	}

	return nil
}

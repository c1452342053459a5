package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eslsoft/lexiroad/internal/usecase/backup"
)

// kindsFromConfig reads a kind list from viper. Empty means every kind.
func kindsFromConfig(key string) ([]string, error) {
	return normalizeKinds(viper.GetStringSlice(key))
}

func normalizeKinds(values []string) ([]string, error) {
	names := lo.Uniq(lo.FilterMap(values, func(value string, _ int) (string, bool) {
		name := strings.ToLower(strings.TrimSpace(value))
		return name, name != ""
	}))
	if len(names) == 0 {
		return nil, nil
	}
	known := backup.Kinds()
	if unknown := lo.Without(names, known...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown backup kind(s) %s; valid kinds: %s",
			strings.Join(unknown, ", "), strings.Join(known, ", "))
	}
	return names, nil
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

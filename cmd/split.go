/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/packagewjx/eda-prep/internal/config"
	"github.com/packagewjx/eda-prep/internal/export"
	"github.com/packagewjx/eda-prep/internal/split"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"strings"
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split inputFile outputDir",
	Short: "将任意带表头的CSV文件划分为训练集、验证集与测试集",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd, map[string]string{
			config.KeyFraction: FractionFlag,
			config.KeySeed:     SeedFlag,
		})
		if err != nil {
			return err
		}

		fin, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "打开输入文件错误")
		}
		defer func() {
			_ = fin.Close()
		}()
		df, err := utils.ReadTable(fin)
		if err != nil {
			return err
		}

		train, validate, test, err := split.Split(df, settings.TestFraction, settings.Seed)
		if err != nil {
			return err
		}
		_, err = export.Write(args[1], export.Format(outputFormat), &export.Partitions{
			Name:     baseName(args[0]),
			Train:    train,
			Validate: validate,
			Test:     test,
		})
		return err
	},
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func init() {
	rootCmd.AddCommand(splitCmd)

	addFormatFlag(splitCmd)
	addSplitFlags(splitCmd)
}

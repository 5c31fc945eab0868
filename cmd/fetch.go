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
	"context"
	"fmt"
	"github.com/packagewjx/eda-prep/internal/pipeline"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/spf13/cobra"
	"log"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch dataset...",
	Short: "获取数据集并写入缓存，缓存已存在时直接读取",
	Long:  fmt.Sprintf("可选数据集：%v", core.DatasetNames()),
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd, map[string]string{})
		if err != nil {
			return err
		}
		for _, name := range args {
			dataset, err := core.GetDataset(name)
			if err != nil {
				return err
			}
			df, err := pipeline.Load(context.Background(), settings.CacheDir, dataset, sourceFactory(settings))
			if err != nil {
				return err
			}
			log.Printf("数据集%s共%d行%d列，缓存文件%s\n", name, df.Nrow(), df.Ncol(),
				pipeline.CachePath(settings.CacheDir, dataset))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

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
	"github.com/packagewjx/eda-prep/internal/config"
	"github.com/packagewjx/eda-prep/internal/export"
	"github.com/packagewjx/eda-prep/internal/pipeline"
	"github.com/packagewjx/eda-prep/internal/preprocess"
	"github.com/packagewjx/eda-prep/internal/split"
	"github.com/spf13/cobra"
	"log"
)

const (
	FormatFlag      = "format"
	ScalerFlag      = "scaler"
	ColumnsFlag     = "columns"
	FractionFlag    = "fraction"
	SeedFlag        = "seed"
	TenureYearsFlag = "tenureYears"
)

var outputFormat string
var scaleColumns []string
var tenureYears bool

// prepareCmd represents the prepare command
var prepareCmd = &cobra.Command{
	Use:   "prepare dataset outputDir",
	Short: "获取、清洗、划分并缩放数据集，输出训练集、验证集与测试集",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd, map[string]string{
			config.KeyScaler:   ScalerFlag,
			config.KeyFraction: FractionFlag,
			config.KeySeed:     SeedFlag,
		})
		if err != nil {
			return err
		}

		result, err := pipeline.Run(context.Background(), &pipeline.Options{
			Dataset:      args[0],
			CacheDir:     settings.CacheDir,
			Sources:      sourceFactory(settings),
			TestFraction: settings.TestFraction,
			Seed:         settings.Seed,
			Scaler:       preprocess.ScalerKind(settings.Scaler),
			ScaleColumns: scaleColumns,
			TenureYears:  tenureYears,
		})
		if err != nil {
			return err
		}
		for i, column := range result.ScaleColumns {
			log.Printf("列%s：中心%f，尺度%f\n", column, result.Params[i].Center, result.Params[i].Scale)
		}

		_, err = export.Write(args[1], export.Format(outputFormat), result.Partitions())
		return err
	},
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, FormatFlag, "f", string(export.CSV),
		fmt.Sprintf("输出格式，可选值：%s、%s、%s", export.CSV, export.XLSX, export.Parquet))
}

func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(FractionFlag, split.DefaultTestFraction, "测试集与验证集的划分比例")
	cmd.Flags().Int64(SeedFlag, split.DefaultSeed, "随机种子")
}

func init() {
	rootCmd.AddCommand(prepareCmd)

	addFormatFlag(prepareCmd)
	addSplitFlags(prepareCmd)
	prepareCmd.Flags().String(ScalerFlag, string(preprocess.MinMax),
		fmt.Sprintf("缩放方式，可选值：%s、%s、%s", preprocess.MinMax, preprocess.Standard, preprocess.Robust))
	prepareCmd.Flags().StringSliceVarP(&scaleColumns, ColumnsFlag, "c", []string{},
		"需要缩放的列，默认使用数据集预设的列")
	prepareCmd.Flags().BoolVar(&tenureYears, TenureYearsFlag, false, "追加tenure_years列，仅适用于telco")
}

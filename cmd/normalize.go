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
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/export"
	"github.com/packagewjx/eda-prep/internal/preprocess"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"os"
)

const NameFlag = "name"

var normalizeScaler string
var normalizeColumns []string
var outputName string

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize (inputFile outputFile | trainFile validateFile testFile outputDir)",
	Short: "使用训练集拟合缩放参数，为三个分区追加{列名}_scaled列",
	Long: "给出四个参数时，只使用训练集拟合缩放参数，三个分区按--format输出到outputDir。\n" +
		"给出两个参数时，在inputFile上拟合并追加缩放列，以CSV写入outputFile。",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 && len(args) != 4 {
			return fmt.Errorf("参数错误")
		} else if len(normalizeColumns) == 0 {
			return fmt.Errorf("必须指定需要缩放的列")
		} else if len(args) == 2 && args[0] == args[1] {
			return fmt.Errorf("输入输出不能一致")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			return normalizeFile(args[0], args[1])
		}

		frames := make([]dataframe.DataFrame, 3)
		for i, path := range args[:3] {
			df, err := readTableFile(path)
			if err != nil {
				return err
			}
			frames[i] = df
		}

		scaler, err := preprocess.NewScaler(preprocess.ScalerKind(normalizeScaler))
		if err != nil {
			return err
		}
		train, validate, test, err := preprocess.AddScaledColumns(frames[0], frames[1], frames[2], scaler, normalizeColumns)
		if err != nil {
			return err
		}
		_, err = export.Write(args[3], export.Format(outputFormat), &export.Partitions{
			Name:     outputName,
			Train:    train,
			Validate: validate,
			Test:     test,
		})
		return err
	},
}

func normalizeFile(input, output string) error {
	fin, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "打开输入文件错误")
	}
	defer func() {
		_ = fin.Close()
	}()
	fout, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "创建输出文件错误")
	}

	err = preprocess.NormalizeTable(fin, fout, preprocess.ScalerKind(normalizeScaler), normalizeColumns)
	if closeErr := fout.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "关闭输出文件错误")
	}
	return err
}

func readTableFile(path string) (dataframe.DataFrame, error) {
	fin, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "打开文件%s错误", path)
	}
	defer func() {
		_ = fin.Close()
	}()
	return utils.ReadTable(fin)
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	addFormatFlag(normalizeCmd)
	normalizeCmd.Flags().StringVar(&normalizeScaler, ScalerFlag, string(preprocess.MinMax),
		fmt.Sprintf("缩放方式，可选值：%s、%s、%s", preprocess.MinMax, preprocess.Standard, preprocess.Robust))
	normalizeCmd.Flags().StringSliceVarP(&normalizeColumns, ColumnsFlag, "c", []string{}, "需要缩放的列")
	normalizeCmd.Flags().StringVar(&outputName, NameFlag, "normalized", "输出文件名前缀")
}

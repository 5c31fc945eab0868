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
	"github.com/packagewjx/eda-prep/internal/classify"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log"
	"os"
	"regexp"
	"strconv"
)

const (
	AlgorithmKMeans = "kmeans"
)

// Global Flags
const (
	AlgorithmFlag       = "algorithm"
	DataFormatFlag      = "dataFormat"
	OutputPrecisionFlag = "outputPrecision"
	AssignmentFlag      = "assignment"
)

// Global Defaults
const (
	DefaultOutputPrecision = 2
)

// Flags for K-Means
const (
	KMeansRoundFlag = "kMeansRound"
)

var algorithm string
var format string
var clusterColumns []string
var outputPrecision int
var kMeansRound int
var assignmentFile string

// clusterCmd represents the cluster command
var clusterCmd = &cobra.Command{
	Use:   "cluster dataFile outputFile numClass",
	Short: "读取数据文件聚类计算，并输出类中心到新文件中",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if format == "" {
			return fmt.Errorf("必须指定数据文件格式")
		} else if len(args) != 3 {
			return fmt.Errorf("参数错误")
		} else if args[0] == args[1] {
			return fmt.Errorf("dataFile与outputFile不能一致")
		}

		if match, _ := regexp.MatchString("^\\d+$", args[2]); !match {
			return fmt.Errorf("类数量参数不是数字")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := classify.GetAlgorithm(classify.AlgorithmType(algorithm))
		if err != nil {
			return err
		}

		loader, err := classify.NewDataLoader(classify.DataFormat(format))
		if err != nil {
			return err
		}
		log.Println("读取数据中")
		fin, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "打开输入文件错误")
		}
		data, err := loader.Load(fin, clusterColumns)
		_ = fin.Close()
		if err != nil {
			return errors.Wrap(err, "读取错误")
		}
		log.Println("读取数据完成")

		log.Println("运行K-Means算法中")
		numClass, _ := strconv.Atoi(args[2])
		centers, class, err := alg.Run(data, numClass, &classify.KMeansContext{Round: kMeansRound})
		if err != nil {
			return err
		}
		log.Println("运行K-Means算法完成")

		fout, err := os.Create(args[1])
		if err != nil {
			return errors.Wrap(err, "创建输出文件错误")
		}
		defer func() {
			_ = fout.Close()
		}()
		if err = classify.OutputResult(centers, header(), fout, outputPrecision); err != nil {
			return errors.Wrap(err, "输出文件错误")
		}

		if assignmentFile == "" {
			return nil
		}
		df, err := readTableFile(args[0])
		if err != nil {
			return err
		}
		labeled, err := classify.AppendClass(df, class)
		if err != nil {
			return err
		}
		fassign, err := os.Create(assignmentFile)
		if err != nil {
			return errors.Wrap(err, "创建类别文件错误")
		}
		defer func() {
			_ = fassign.Close()
		}()
		return utils.WriteTable(fassign, labeled)
	},
}

// 未指定列时输出不带表头
func header() []string {
	if len(clusterColumns) == 0 {
		return nil
	}
	return clusterColumns
}

func init() {
	rootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().StringVarP(&algorithm, AlgorithmFlag, "a", AlgorithmKMeans,
		"指定使用的算法。默认为kmeans，可选值：kmeans")
	clusterCmd.Flags().StringVarP(&format, DataFormatFlag, "d", string(classify.CSV),
		"数据文件格式")
	clusterCmd.Flags().StringSliceVarP(&clusterColumns, ColumnsFlag, "c", []string{},
		"参与聚类的列，默认使用全部列。使用此字段忽略掉不是数字的列")
	clusterCmd.Flags().IntVarP(&outputPrecision, OutputPrecisionFlag, "p", DefaultOutputPrecision,
		"输出文件数据精度，默认为2")
	clusterCmd.Flags().StringVar(&assignmentFile, AssignmentFlag, "",
		"若指定，则将追加cluster列的数据写入此文件")

	// Flags for K-Means Algorithm
	clusterCmd.Flags().IntVar(&kMeansRound, KMeansRoundFlag, classify.KMeansDefaultRound,
		"K-Means算法执行的轮次")
}

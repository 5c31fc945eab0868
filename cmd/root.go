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
	"github.com/mitchellh/go-homedir"
	"github.com/packagewjx/eda-prep/internal/config"
	"github.com/packagewjx/eda-prep/internal/datasource"
	"github.com/packagewjx/eda-prep/internal/pipeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	ConfigFlag   = "config"
	CacheDirFlag = "cacheDir"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eda-prep",
	Short: "数据集获取、清洗、划分与缩放工具",
	Long: "从数据库获取telco、mall、zillow数据集并缓存到本地CSV文件，" +
		"清洗编码后划分为训练集、验证集与测试集，仅使用训练集拟合缩放参数。",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, ConfigFlag, "", "配置文件（默认为$HOME/.eda-prep.yaml）")
	rootCmd.PersistentFlags().String(CacheDirFlag, config.DefaultCacheDir, "数据集缓存目录")
}

// initConfig reads in config file if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".eda-prep")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// loadSettings 将当前命令的参数绑定到配置项后读取配置，只有显式指定的参数会覆盖配置文件
func loadSettings(cmd *cobra.Command, bindings map[string]string) (*config.Settings, error) {
	bindings[config.KeyCacheDir] = CacheDirFlag
	for key, flag := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "绑定参数%s出错", flag)
		}
	}
	return config.Load(viper.GetViper())
}

func sourceFactory(settings *config.Settings) pipeline.SourceFactory {
	return func(database string) (datasource.Source, error) {
		return datasource.NewSource(settings.Descriptor(database))
	}
}

package pipeline

import (
	"context"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-playground/validator/v10"
	"github.com/packagewjx/eda-prep/internal/cache"
	"github.com/packagewjx/eda-prep/internal/datasource"
	"github.com/packagewjx/eda-prep/internal/export"
	"github.com/packagewjx/eda-prep/internal/preprocess"
	"github.com/packagewjx/eda-prep/internal/split"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"log"
	"os"
	"path/filepath"
)

var logger = log.New(os.Stdout, "pipeline: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// SourceFactory 仅在缓存未命中时调用
type SourceFactory func(database string) (datasource.Source, error)

type Options struct {
	Dataset      string                `validate:"required"`
	CacheDir     string                `validate:"required"`
	Sources      SourceFactory         `validate:"required"`
	TestFraction float64               `validate:"gt=0,lt=1"`
	Seed         int64
	Scaler       preprocess.ScalerKind `validate:"oneof=minmax standard robust"`
	// 为空时使用数据集默认的列
	ScaleColumns []string
	// 追加tenure_years列
	TenureYears bool
}

type Result struct {
	Dataset      *core.Dataset
	Train        dataframe.DataFrame
	Validate     dataframe.DataFrame
	Test         dataframe.DataFrame
	ScaleColumns []string
	Params       []preprocess.ScaleParam
}

func (r *Result) Partitions() *export.Partitions {
	return &export.Partitions{Name: r.Dataset.Name, Train: r.Train, Validate: r.Validate, Test: r.Test}
}

// CachePath 返回数据集的缓存文件路径
func CachePath(cacheDir string, dataset *core.Dataset) string {
	return filepath.Join(cacheDir, dataset.FileName)
}

// Load 读取缓存，缓存不存在时从数据库获取并写入缓存
func Load(ctx context.Context, cacheDir string, dataset *core.Dataset, sources SourceFactory) (dataframe.DataFrame, error) {
	return cache.LoadOrFetch(CachePath(cacheDir, dataset), func() (dataframe.DataFrame, error) {
		logger.Printf("缓存未命中，从数据库%s获取数据集%s\n", dataset.Database, dataset.Name)
		source, err := sources(dataset.Database)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		return source.Fetch(ctx, dataset.Query)
	})
}

func Run(ctx context.Context, opts *Options) (*Result, error) {
	if err := validator.New().Struct(opts); err != nil {
		return nil, errors.Wrap(err, "参数有误")
	}
	dataset, err := core.GetDataset(opts.Dataset)
	if err != nil {
		return nil, err
	}
	processor, err := preprocess.Default(dataset.Name)
	if err != nil {
		return nil, err
	}
	if opts.TenureYears {
		processor = preprocess.Chain(processor, preprocess.TenureYears())
	}
	scaler, err := preprocess.NewScaler(opts.Scaler)
	if err != nil {
		return nil, err
	}
	columns := opts.ScaleColumns
	if len(columns) == 0 {
		columns = dataset.ScaleColumns
	}

	raw, err := Load(ctx, opts.CacheDir, dataset, opts.Sources)
	if err != nil {
		return nil, errors.Wrapf(err, "获取数据集%s出错", dataset.Name)
	}
	prepared, err := processor.Preprocess(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "清洗数据集%s出错", dataset.Name)
	}
	train, validate, test, err := split.Split(prepared, opts.TestFraction, opts.Seed)
	if err != nil {
		return nil, err
	}
	train, validate, test, err = preprocess.AddScaledColumns(train, validate, test, scaler, columns)
	if err != nil {
		return nil, errors.Wrapf(err, "缩放数据集%s出错", dataset.Name)
	}

	logger.Printf("数据集%s处理完成\n", dataset.Name)
	return &Result{
		Dataset:      dataset,
		Train:        train,
		Validate:     validate,
		Test:         test,
		ScaleColumns: columns,
		Params:       scaler.Params(),
	}, nil
}

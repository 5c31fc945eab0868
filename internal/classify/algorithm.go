package classify

import (
	"fmt"
	"github.com/packagewjx/kmeanspp"
	"log"
)

// 聚类算法接口
type Algorithm interface {
	Run(data [][]float32, numClass int, context interface{}) (centers [][]float32, class []int, err error)
}

type AlgorithmType string

const (
	KMeans = AlgorithmType("kmeans")
)

func GetAlgorithm(algorithmType AlgorithmType) (Algorithm, error) {
	switch algorithmType {
	case KMeans:
		return &kMeansRunner{}, nil
	default:
		return nil, fmt.Errorf("不支持的算法%s，可选值：%s", algorithmType, KMeans)
	}
}

type KMeansContext struct {
	Round int
}

const (
	KMeansDefaultRound = 30
)

type kMeansRunner struct {
}

func (k *kMeansRunner) Run(data [][]float32, numClass int, context interface{}) (centers [][]float32, class []int, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("没有可聚类的数据")
	}
	if numClass <= 0 || numClass > len(data) {
		return nil, nil, fmt.Errorf("类数量%d不在[1,%d]范围内", numClass, len(data))
	}
	for i, datum := range data {
		if len(datum) != len(data[0]) {
			return nil, nil, fmt.Errorf("第%d行数据长度为%d，与第0行的%d不一致", i, len(datum), len(data[0]))
		}
	}

	round := KMeansDefaultRound
	if context != nil {
		ctx, ok := context.(*KMeansContext)
		if !ok {
			log.Printf("输入的context不是KMeansContext类型。将使用默认参数")
		} else if ctx.Round > 0 {
			round = ctx.Round
		}
	}

	centers, class = kmeanspp.KMeansPP(numClass, round, data)
	return centers, class, nil
}

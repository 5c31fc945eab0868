package split

import (
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"log"
	"math"
	"math/rand"
	"os"
)

const (
	DefaultTestFraction = 0.12
	DefaultSeed         = 123
)

var logger = log.New(os.Stdout, "split: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// Split 先从df中按fraction划出测试集，再用同样的fraction与seed从剩余部分划出验证集。
// 各分区内的行顺序为打乱后的顺序
func Split(df dataframe.DataFrame, fraction float64, seed int64) (train, validate, test dataframe.DataFrame, err error) {
	if df.Err != nil {
		return df, df, df, errors.Wrap(df.Err, "输入数据有误")
	}
	if !(fraction > 0 && fraction < 1) {
		return df, df, df, fmt.Errorf("比例%f不在(0,1)区间内", fraction)
	}

	test, rest, err := splitOnce(df, fraction, seed)
	if err != nil {
		return df, df, df, err
	}
	validate, train, err = splitOnce(rest, fraction, seed)
	if err != nil {
		return df, df, df, err
	}

	logger.Printf("共%d行，训练集%d行，验证集%d行，测试集%d行\n", df.Nrow(), train.Nrow(), validate.Nrow(), test.Nrow())
	return train, validate, test, nil
}

// SplitSizes 返回Split对n行数据划分出的各分区大小
func SplitSizes(n int, fraction float64) (train, validate, test int) {
	test = carveSize(n, fraction)
	validate = carveSize(n-test, fraction)
	return n - test - validate, validate, test
}

func carveSize(n int, fraction float64) int {
	return int(math.Round(fraction * float64(n)))
}

// splitOnce 返回打乱后的前round(fraction*n)行与其余行
func splitOnce(df dataframe.DataFrame, fraction float64, seed int64) (carved, rest dataframe.DataFrame, err error) {
	n := df.Nrow()
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	size := carveSize(n, fraction)

	carved = df.Subset(perm[:size])
	if carved.Err != nil {
		return df, df, errors.Wrap(carved.Err, "划分数据出错")
	}
	rest = df.Subset(perm[size:])
	if rest.Err != nil {
		return df, df, errors.Wrap(rest.Err, "划分数据出错")
	}
	return carved, rest, nil
}

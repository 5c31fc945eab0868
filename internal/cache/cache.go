package cache

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"log"
	"os"
	"path/filepath"
)

var logger = log.New(os.Stdout, "cache: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

type FetchFunc func() (dataframe.DataFrame, error)

// LoadOrFetch 文件存在即视为命中，直接读取且不做任何校验；否则调用fetch获取数据并写入path。
// fetch的错误原样返回，不重试。
func LoadOrFetch(path string, fetch FetchFunc) (dataframe.DataFrame, error) {
	_, err := os.Stat(path)
	if err == nil {
		return load(path)
	} else if !os.IsNotExist(err) {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrIO, err), "检查缓存文件"+path+"出错")
	}

	logger.Printf("缓存%s不存在，从数据源获取\n", path)
	df, err := fetch()
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	if err := store(path, df); err != nil {
		return dataframe.DataFrame{}, err
	}
	return df, nil
}

func load(path string) (dataframe.DataFrame, error) {
	fin, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrIO, err), "打开缓存文件"+path+"出错")
	}
	defer func() {
		_ = fin.Close()
	}()

	counter := &utils.ReadCounter{Reader: fin}
	df, err := utils.ReadTable(counter)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrIO, err), "读取缓存文件"+path+"出错")
	}
	logger.Printf("命中缓存%s，读取%d字节，%d行%d列\n", path, counter.Count, df.Nrow(), df.Ncol())
	return df, nil
}

// 写入失败时删除不完整的文件，避免下次被当作缓存命中
func store(path string, df dataframe.DataFrame) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(core.Categorize(core.ErrIO, err), "创建缓存目录出错")
		}
	}

	fout, err := os.Create(path)
	if err != nil {
		return errors.Wrap(core.Categorize(core.ErrIO, err), "创建缓存文件"+path+"出错")
	}
	defer func() {
		closeErr := fout.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrap(core.Categorize(core.ErrIO, closeErr), "关闭缓存文件"+path+"出错")
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	counter := &utils.WriterCounter{Writer: fout}
	if err = utils.WriteTable(counter, df); err != nil {
		return errors.Wrap(core.Categorize(core.ErrIO, err), "写入缓存文件"+path+"出错")
	}
	logger.Printf("已写入缓存%s，%d字节\n", path, counter.Count)
	return nil
}

package utils

import "io"

// ReadCounter 统计读取的字节数，用于日志
type ReadCounter struct {
	Reader io.Reader
	Count  int64
}

func (r *ReadCounter) Read(p []byte) (n int, err error) {
	n, err = r.Reader.Read(p)
	r.Count += int64(n)
	return
}

type WriterCounter struct {
	Writer io.Writer
	Count  int64
}

func (w *WriterCounter) Write(p []byte) (n int, err error) {
	n, err = w.Writer.Write(p)
	w.Count += int64(n)
	return
}

package config

import (
	"io"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const (
	UTF8 = "utf-8"
	GBK  = "gbk" // What spreadsheet software on Chinese Windows opens CSV files with
)

// Reader decodes in from the given encoding into UTF-8
func Reader(in io.Reader, encoding string) io.Reader {
	if encoding == GBK {
		return transform.NewReader(in, simplifiedchinese.GBK.NewDecoder())
	}
	return in
}

// Writer encodes UTF-8 text written to it into the given encoding.
// Close flushes what's left but leaves out open.
func Writer(out io.Writer, encoding string) io.WriteCloser {
	if encoding == GBK {
		return transform.NewWriter(out, simplifiedchinese.GBK.NewEncoder())
	}
	return nopCloser{out}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

// ResponseBody returns the body of resp with every Content-Encoding undone,
// last applied first.
func ResponseBody(resp *fasthttp.Response) ([]byte, error) {
	return Decode(string(resp.Header.Peek(fasthttp.HeaderContentEncoding)), resp.Body())
}

func Decode(contentEncoding string, body []byte) ([]byte, error) {
	if contentEncoding == "" {
		return body, nil
	}
	codings := strings.Split(contentEncoding, ",")
	for i := len(codings) - 1; i >= 0; i-- {
		var err error
		switch coding := strings.ToLower(strings.TrimSpace(codings[i])); coding {
		case "", "identity":
			continue
		case "br":
			body, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "gzip", "x-gzip":
			body, err = readGzip(body)
		case "zstd":
			body, err = readZstd(body)
		case "deflate":
			body, err = readDeflate(body)
		default:
			return nil, fmt.Errorf("unsupported content-encoding: %q", coding)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", strings.TrimSpace(codings[i]), err)
		}
	}
	return body, nil
}

func readGzip(body []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return readAllClose(r)
}

func readZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

// readDeflate accepts zlib-wrapped data and falls back to raw DEFLATE.
func readDeflate(body []byte) ([]byte, error) {
	if r, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		return readAllClose(r)
	}
	return readAllClose(flate.NewReader(bytes.NewReader(body)))
}

func readAllClose(r io.ReadCloser) ([]byte, error) {
	out, err := io.ReadAll(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	return out, err
}

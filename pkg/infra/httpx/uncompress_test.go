package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func compress(t *testing.T, newWriter func(io.Writer) io.WriteCloser, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := newWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	payload := []byte(`{"generated_text":" flagged"}`)

	writers := map[string]func(io.Writer) io.WriteCloser{
		"gzip": func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		"br":   func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) },
		"zstd": func(w io.Writer) io.WriteCloser {
			zw, _ := zstd.NewWriter(w)
			return zw
		},
		"deflate": func(w io.Writer) io.WriteCloser { return zlib.NewWriter(w) },
	}

	for enc, newWriter := range writers {
		t.Run(enc, func(t *testing.T) {
			out, err := Decode(enc, compress(t, newWriter, payload))
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}

	t.Run("raw deflate", func(t *testing.T) {
		raw := compress(t, func(w io.Writer) io.WriteCloser {
			fw, _ := flate.NewWriter(w, flate.DefaultCompression)
			return fw
		}, payload)
		out, err := Decode("deflate", raw)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	})

	t.Run("chained", func(t *testing.T) {
		gz := compress(t, writers["gzip"], payload)
		chained := compress(t, writers["br"], gz)
		out, err := Decode("gzip, br", chained)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	})

	t.Run("identity and empty", func(t *testing.T) {
		out, err := Decode("identity", payload)
		require.NoError(t, err)
		assert.Equal(t, payload, out)

		out, err = Decode("", payload)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Decode("lzma", payload)
		assert.ErrorContains(t, err, "unsupported content-encoding")
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		_, err := Decode("gzip", []byte("not gzip"))
		assert.ErrorContains(t, err, "decode gzip")
	})
}

func TestResponseBody(t *testing.T) {
	payload := []byte("okay")
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	resp.Header.Set(fasthttp.HeaderContentEncoding, "gzip")
	resp.SetBody(compress(t, func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }, payload))

	out, err := ResponseBody(resp)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

// Command sizes generates the per-size entry points of package microfft and
// their tests: one size<N>.go and size<N>_test.go per supported length.
//
// Run it through go generate from the module root:
//
//	go generate .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"
)

var sizes = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384}

type sizeData struct {
	N      int
	Half   int
	Tagged bool
}

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	for _, n := range sizes {
		data := sizeData{N: n, Half: n / 2, Tagged: n > 2}

		if err := render(filepath.Join(*out, fmt.Sprintf("size%d.go", n)), sourceTemplate, data); err != nil {
			log.Fatal(err)
		}

		if err := render(filepath.Join(*out, fmt.Sprintf("size%d_test.go", n)), testTemplate, data); err != nil {
			log.Fatal(err)
		}
	}
}

func render(path string, tmpl *template.Template, data sizeData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

var sourceTemplate = template.Must(template.New("source").Parse(`// Code generated by internal/gen/sizes; DO NOT EDIT.
{{if .Tagged}}
//go:build !microfft_no{{.N}}
{{end}}
package microfft

import (
	"unsafe"

	"github.com/cwbudde/algo-microfft/internal/kernels"
)

var twiddles{{.N}} = kernels.NewTwiddleTable({{.N}})

func init() {
	register(N{{.N}}, twiddles{{.N}})
}

// FFT{{.N}} performs an in-place {{.N}}-point forward FFT and returns x.
func FFT{{.N}}(x *[{{.N}}]complex64) *[{{.N}}]complex64 {
	kernels.ForwardSized(x[:], twiddles{{.N}}.Get())
	return x
}

// IFFT{{.N}} performs an in-place {{.N}}-point inverse FFT, normalized by 1/{{.N}},
// and returns x.
func IFFT{{.N}}(x *[{{.N}}]complex64) *[{{.N}}]complex64 {
	kernels.Inverse(x[:], twiddles{{.N}}.Get())
	return x
}

// RFFT{{.N}} performs an in-place {{.N}}-point forward FFT of real samples. The
// result reuses the storage of x as {{.Half}} complex bins; bin 0 holds the DC
// term in its real part and the Nyquist term in its imaginary part.
func RFFT{{.N}}(x *[{{.N}}]float32) *[{{.Half}}]complex64 {
	z := (*[{{.Half}}]complex64)(unsafe.Pointer(x))
	kernels.RealForward(z[:], twiddles{{.N}}.Get())

	return z
}
`))

var testTemplate = template.Must(template.New("test").Parse(`// Code generated by internal/gen/sizes; DO NOT EDIT.
{{if .Tagged}}
//go:build !microfft_no{{.N}}
{{end}}
package microfft

import (
	"testing"
	"unsafe"
)

func TestFFT{{.N}}(t *testing.T) {
	t.Parallel()

	var x [{{.N}}]complex64

	src := randomComplex64({{.N}}, {{.N}})
	copy(x[:], src)

	if got := FFT{{.N}}(&x); got != &x {
		t.Fatal("FFT{{.N}} returned different storage")
	}

	checkForward(t, x[:], src)
}

func TestIFFT{{.N}}(t *testing.T) {
	t.Parallel()

	var x [{{.N}}]complex64

	src := randomComplex64({{.N}}, {{.N}}+1)
	copy(x[:], src)

	if got := IFFT{{.N}}(&x); got != &x {
		t.Fatal("IFFT{{.N}} returned different storage")
	}

	checkInverse(t, x[:], src)

	copy(x[:], src)
	IFFT{{.N}}(FFT{{.N}}(&x))
	checkRoundTrip(t, x[:], src)
}

func TestRFFT{{.N}}(t *testing.T) {
	t.Parallel()

	var x [{{.N}}]float32

	src := randomFloat32({{.N}}, {{.N}}+2)
	copy(x[:], src)

	got := RFFT{{.N}}(&x)
	if unsafe.Pointer(got) != unsafe.Pointer(&x) {
		t.Fatal("RFFT{{.N}} returned different storage")
	}

	checkReal(t, got[:], src)
}

func BenchmarkIFFT{{.N}}(b *testing.B) {
	var x [{{.N}}]complex64

	copy(x[:], randomComplex64({{.N}}, 1))

	b.ReportAllocs()
	b.SetBytes({{.N}} * 8)

	for range b.N {
		IFFT{{.N}}(&x)
	}
}
`))

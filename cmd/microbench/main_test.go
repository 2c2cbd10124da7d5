package main

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-microfft"
)

func TestParseSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []int
	}{
		{"16,256", []int{16, 256}},
		{" 8 , ,32,", []int{8, 32}},
		{"-4,abc,64", []int{64}},
		{"", []int{}},
	}

	for _, tt := range tests {
		if got := parseSizes(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSizes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveModes(t *testing.T) {
	t.Parallel()

	if got := resolveModes("all"); len(got) != 4 {
		t.Errorf("resolveModes(all) = %v", got)
	}

	if got := resolveModes("real"); !reflect.DeepEqual(got, []string{modeReal}) {
		t.Errorf("resolveModes(real) = %v", got)
	}

	if got := resolveModes("bogus"); !reflect.DeepEqual(got, []string{modeForward}) {
		t.Errorf("resolveModes(bogus) = %v", got)
	}
}

func TestBenchmarkSize(t *testing.T) {
	t.Parallel()

	tr, err := microfft.Lookup(64)
	if err != nil {
		t.Skip(err)
	}

	rnd := rand.New(rand.NewSource(1))

	if got := benchmarkSize(rnd, tr, 2, 1, modeForward); len(got) != 2 {
		t.Errorf("forward mode returned %d results, want 2", len(got))
	}

	for _, mode := range []string{modeInverse, modeReal, modeRoundTrip} {
		got := benchmarkSize(rnd, tr, 2, 1, mode)
		if len(got) != 1 || got[0].nsPerOp < 0 {
			t.Errorf("%s mode returned %+v", mode, got)
		}
	}
}

func TestRunConformanceMissingConfig(t *testing.T) {
	t.Parallel()

	if code := runConformance("testdata/does-not-exist.yaml"); code != 2 {
		t.Errorf("runConformance exit code = %d, want 2", code)
	}
}

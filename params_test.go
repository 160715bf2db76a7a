package mandel

import (
	"errors"
	"flag"
	"testing"
	"time"
)

func TestDefaultParams_Valid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}
	w, h, title := p.DisplayParams()
	if w != 1200 || h != 800 || title != "Buddhabrot" {
		t.Errorf("DisplayParams() = %d, %d, %q", w, h, title)
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"empty window", func(p *Params) { p.MinIter = p.MaxIter }, ErrIterWindow},
		{"tiny grid", func(p *Params) { p.Width = 1 }, ErrResolution},
		{"empty region", func(p *Params) { p.Region = Region{} }, ErrEmptyRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			if err := p.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}

	p := DefaultParams()
	p.Workers, p.MaxDraws = -1, -1
	if err := p.Validate(); err == nil {
		t.Error("negative workers and draws accepted")
	}
}

func TestParams_RegisterFlags(t *testing.T) {
	p := DefaultParams()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p.RegisterFlags(fs)

	err := fs.Parse([]string{"-region", "antenna", "-width", "320", "-max-iter", "50", "-interval", "250ms", "-seed", "9"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Region != Antenna || p.Width != 320 || p.MaxIter != 50 || p.Interval != 250*time.Millisecond || p.Seed != 9 {
		t.Errorf("parsed params = %+v", p)
	}
	if got := fs.Lookup("region").Value.String(); got != "antenna" {
		t.Errorf("region flag String() = %q, want antenna", got)
	}

	if err := fs.Parse([]string{"-region", "nowhere"}); err == nil {
		t.Error("unknown region accepted")
	}
}

package config

import (
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "30m", want: 30 * time.Minute},
		{in: "1h", want: time.Hour},
		{in: "90s", want: 90 * time.Second},
		{in: "45", want: 45 * time.Minute},
		{in: "1h30m", want: 90 * time.Minute},
		{in: "soon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseInterval(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf(
						"expected %q to yield an error, but got: %s",
						tc.in,
						got,
					)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if got != tc.want {
				t.Errorf(
					"expected interval to be %s, but got: %s",
					tc.want,
					got,
				)
			}
		})
	}
}

func TestEnvOverridesFileNames(t *testing.T) {
	// init() has already run; just confirm the defaults are intact when
	// the env var is unset in the test environment.
	if configDir != "worktrack" {
		t.Fatalf(
			"expected config dir to be 'worktrack', but got: %s",
			configDir,
		)
	}
}

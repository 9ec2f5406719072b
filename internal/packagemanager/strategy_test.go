package packagemanager

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseStrategies(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []Strategy
		wantErr []string
	}{
		{
			name: "comma list",
			raw:  []string{"lockFile,packageJson"},
			want: []Strategy{StrategyLockFile, StrategyPackageJSON},
		},
		{
			name: "separate entries with spaces",
			raw:  []string{" userAgent ", "lockFile"},
			want: []Strategy{StrategyUserAgent, StrategyLockFile},
		},
		{
			name: "duplicates keep first position",
			raw:  []string{"lockFile,packageJson,lockFile"},
			want: []Strategy{StrategyLockFile, StrategyPackageJSON},
		},
		{
			name:    "every invalid name is reported",
			raw:     []string{"lockfile,packageJson,npmrc"},
			wantErr: []string{`invalid strategy "lockfile"`, `invalid strategy "npmrc"`, "2 errors occurred"},
		},
		{
			name:    "empty",
			raw:     []string{" , "},
			wantErr: []string{"no strategies given"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategies(tt.raw)
			if len(tt.wantErr) > 0 {
				for _, msg := range tt.wantErr {
					assert.ErrorContains(t, err, msg)
				}
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, got, tt.want)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, strategy := range DefaultStrategies {
		got, err := ParseStrategy(string(strategy))
		assert.NilError(t, err)
		assert.Equal(t, got, strategy)
	}
	_, err := ParseStrategy("manifestField")
	assert.ErrorContains(t, err, "expected one of packageJson, lockFile, userAgent")
}

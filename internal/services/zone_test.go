package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-admin/internal/dto"
	apperrors "freight-admin/pkg/errors"
)

func TestZoneZipFromPayload(t *testing.T) {
	tests := []struct {
		name    string
		in      dto.AddZoneZipDTO
		wantZip string
		wantLo  string
		wantHi  string
		wantErr bool
	}{
		{name: "single zip", in: dto.AddZoneZipDTO{ZipCode: "75001"}, wantZip: "75001"},
		{name: "range", in: dto.AddZoneZipDTO{RangeStart: "75001", RangeEnd: "75099"}, wantLo: "75001", wantHi: "75099"},
		{name: "one zip range", in: dto.AddZoneZipDTO{RangeStart: "75001", RangeEnd: "75001"}, wantLo: "75001", wantHi: "75001"},
		{name: "reversed range", in: dto.AddZoneZipDTO{RangeStart: "75099", RangeEnd: "75001"}, wantErr: true},
		{name: "half range", in: dto.AddZoneZipDTO{RangeStart: "75001"}, wantErr: true},
		{name: "both forms", in: dto.AddZoneZipDTO{ZipCode: "75001", RangeStart: "75001", RangeEnd: "75002"}, wantErr: true},
		{name: "short zip", in: dto.AddZoneZipDTO{ZipCode: "7500"}, wantErr: true},
		{name: "empty", in: dto.AddZoneZipDTO{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zz, err := zoneZipFromPayload(tt.in)
			if tt.wantErr {
				var invalid *apperrors.InvalidInputError
				assert.True(t, errors.As(err, &invalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantZip, zz.ZipCode.String)
			assert.Equal(t, tt.wantLo, zz.RangeStart.String)
			assert.Equal(t, tt.wantHi, zz.RangeEnd.String)
			assert.Equal(t, tt.wantZip != "", zz.ZipCode.Valid)
		})
	}
}

func TestResolveZones_RejectsBadQuery(t *testing.T) {
	svc := NewZoneService(nil, nil)

	_, err := svc.ResolveZones(adminCtx(), "75099-75001")
	var invalid *apperrors.InvalidInputError
	assert.True(t, errors.As(err, &invalid))

	_, err = svc.ResolveZones(adminCtx(), "abc")
	assert.True(t, errors.As(err, &invalid))
}

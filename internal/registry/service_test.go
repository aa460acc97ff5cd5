package registry

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"switchcfg/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store with the same natural-key semantics as
// the GORM repo. Iteration order is insertion order.
type memStore struct {
	recs []models.PortConfig
}

func (m *memStore) Replace(rec models.PortConfig) error {
	kept := m.recs[:0]
	for _, r := range m.recs {
		if r.SwitchNumber == rec.SwitchNumber && r.PortName == rec.PortName {
			continue
		}
		kept = append(kept, r)
	}
	m.recs = append(kept, rec)
	return nil
}

func (m *memStore) Find(f Filter, limit int) ([]models.PortConfig, error) {
	var out []models.PortConfig
	for _, r := range m.recs {
		if f.SwitchNumber != nil && r.SwitchNumber != *f.SwitchNumber {
			continue
		}
		if f.PortType != nil && r.PortType != *f.PortType {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) FindOne(portName string, switchNumber int) (*models.PortConfig, error) {
	for i := range m.recs {
		if m.recs[i].PortName == portName && m.recs[i].SwitchNumber == switchNumber {
			r := m.recs[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateOne(portName string, switchNumber int, values map[string]any) (int64, error) {
	for i := range m.recs {
		if m.recs[i].PortName != portName || m.recs[i].SwitchNumber != switchNumber {
			continue
		}
		if v, ok := values["config_type"]; ok {
			m.recs[i].ConfigType = v.(string)
		}
		if v, ok := values["description"]; ok {
			m.recs[i].Description, _ = v.(*string)
		}
		if v, ok := values["updated_at"]; ok {
			m.recs[i].UpdatedAt = v.(time.Time)
		}
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) DeleteMany(switchNumber *int) (int64, error) {
	var deleted int64
	kept := m.recs[:0]
	for _, r := range m.recs {
		if switchNumber == nil || r.SwitchNumber == *switchNumber {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.recs = kept
	return deleted, nil
}

func strptr(s string) *string { return &s }

func TestCreateAssignsIdentity(t *testing.T) {
	svc := NewService(&memStore{})

	rec, err := svc.Create(CreateInput{
		SwitchNumber: 1,
		PortType:     "access",
		PortName:     "Gi1/0/1",
		ConfigType:   "camera",
		Description:  strptr("hallway cam"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, rec.SwitchNumber)
	assert.Equal(t, "Gi1/0/1", rec.PortName)
	assert.Equal(t, "camera", rec.ConfigType)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestCreateReplacesOnNaturalKey(t *testing.T) {
	st := &memStore{}
	svc := NewService(st)

	first, err := svc.Create(CreateInput{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/1", ConfigType: "camera"})
	require.NoError(t, err)
	second, err := svc.Create(CreateInput{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/1", ConfigType: "printer", Description: strptr("lab printer")})
	require.NoError(t, err)

	// one record left, carrying the second call's fields and a new id
	require.Len(t, st.recs, 1)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "printer", st.recs[0].ConfigType)
	assert.Equal(t, "lab printer", *st.recs[0].Description)
}

func TestGetRoundTrip(t *testing.T) {
	svc := NewService(&memStore{})

	created, err := svc.Create(CreateInput{SwitchNumber: 2, PortType: "access", PortName: "Gi2/0/10", ConfigType: "data_voice"})
	require.NoError(t, err)

	got, err := svc.Get("Gi2/0/10", 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	missing, err := svc.Get("Gi2/0/11", 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdate(t *testing.T) {
	svc := NewService(&memStore{})

	created, err := svc.Create(CreateInput{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/3", ConfigType: "camera"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update("Gi1/0/3", 1, "management", strptr("idf uplink"))
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "management", updated.ConfigType)
	assert.Equal(t, "idf uplink", *updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(&memStore{})

	_, err := svc.Update("Gi9/0/9", 9, "camera", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAll(t *testing.T) {
	svc := NewService(&memStore{})
	for i, sw := range []int{1, 1, 2} {
		_, err := svc.Create(CreateInput{SwitchNumber: sw, PortType: "access", PortName: fmt.Sprintf("Gi%d/0/%d", sw, i), ConfigType: "camera"})
		require.NoError(t, err)
	}

	n, err := svc.DeleteAll(intptr(1))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = svc.DeleteAll(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	recs, err := svc.List(Filter{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestListCap(t *testing.T) {
	svc := NewService(&memStore{})
	for i := 0; i < MaxListResults+5; i++ {
		_, err := svc.Create(CreateInput{SwitchNumber: 1, PortType: "access", PortName: fmt.Sprintf("Gi1/0/%d", i), ConfigType: "none"})
		require.NoError(t, err)
	}
	recs, err := svc.List(Filter{})
	require.NoError(t, err)
	assert.Len(t, recs, MaxListResults)
}

func TestGenerateCodeNoMatch(t *testing.T) {
	svc := NewService(&memStore{})

	code, count, err := svc.GenerateCode(1, "access")
	require.NoError(t, err)
	assert.Equal(t, NoPortsSentinel, code)
	assert.Zero(t, count)
}

func TestGenerateCodeAllNone(t *testing.T) {
	svc := NewService(&memStore{})
	for i := 1; i <= 3; i++ {
		_, err := svc.Create(CreateInput{SwitchNumber: 1, PortType: "access", PortName: fmt.Sprintf("Gi1/0/%d", i), ConfigType: "none"})
		require.NoError(t, err)
	}

	code, count, err := svc.GenerateCode(1, "access")
	require.NoError(t, err)
	assert.Equal(t, "", code, "none ports produce no output and no separators")
	assert.Equal(t, 3, count)
}

func TestGenerateCodeCameraExample(t *testing.T) {
	svc := NewService(&memStore{})
	_, err := svc.Create(CreateInput{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/1", ConfigType: "camera"})
	require.NoError(t, err)

	code, count, err := svc.GenerateCode(1, "access")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, strings.HasPrefix(code,
		"default interface Gi1/0/1\ninterface Gi1/0/1\ndescription // Camera //\nswitchport mode access\nswitchport access vlan 5\n"))
}

func TestGenerateCodeSeparatorsAndFiltering(t *testing.T) {
	svc := NewService(&memStore{})
	seed := []CreateInput{
		{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/1", ConfigType: "camera"},
		{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/2", ConfigType: "none"},
		{SwitchNumber: 1, PortType: "access", PortName: "Gi1/0/3", ConfigType: "reset"},
		{SwitchNumber: 1, PortType: "trunk", PortName: "Gi1/0/48", ConfigType: "trunk_switch"},
		{SwitchNumber: 2, PortType: "access", PortName: "Gi2/0/1", ConfigType: "camera"},
	}
	for _, in := range seed {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	code, count, err := svc.GenerateCode(1, "access")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "port_count reflects matches, including skipped none ports")

	// camera block, blank line, reset block; trunk and switch 2 excluded
	assert.Contains(t, code, "exit\n\ninterface Gi1/0/3\nshutdown")
	assert.NotContains(t, code, "Gi1/0/48")
	assert.NotContains(t, code, "Gi2/0/1")
	assert.True(t, strings.HasSuffix(code, "!\n"))
}

func intptr(i int) *int { return &i }

package bench

import "testing"

func TestForestSettingValidate(t *testing.T) {
	testData := []struct {
		nt int
		nh int

		err error
	}{
		{1, 1, nil},
		{16, 8, nil},
		{0, 8, ErrInvalidNumTables},
		{4, 0, ErrInvalidNumHyperplanes},
		{4, 17, ErrExceededMaxNumHyperplanes},
	}
	for _, td := range testData {
		s := ForestSetting{NumTables: td.nt, NumHyperplanes: td.nh}
		if err := s.Validate(); err != td.err {
			t.Errorf("expected %v, but got %v", td.err, err)
			continue
		}
	}
}

func TestConfigValidate(t *testing.T) {
	testData := []struct {
		modify func(*Config)

		err error
	}{
		{func(c *Config) {}, nil},
		{func(c *Config) { c.IndexSizes = nil }, ErrNoIndexSizes},
		{func(c *Config) { c.IndexSizes = []int{100, 0} }, ErrInvalidIndexSize},
		{func(c *Config) { c.NumFeatures = 0 }, ErrInvalidNumFeatures},
		{func(c *Config) { c.NumQueries = 0 }, ErrInvalidNumQueries},
		{func(c *Config) { c.NumNeighbors = 0 }, ErrInvalidNumNeighbors},
		{func(c *Config) { c.Settings = nil }, ErrNoSettings},
		{func(c *Config) { c.Settings[0].NumTables = 0 }, ErrInvalidNumTables},
	}
	for _, td := range testData {
		cfg := NewDefaultConfig()
		td.modify(cfg)
		if err := cfg.Validate(); err != td.err {
			t.Errorf("expected %v, but got %v", td.err, err)
			continue
		}
	}
}

func TestConfigMaxIndexSize(t *testing.T) {
	testData := []struct {
		sizes []int

		expected int
	}{
		{[]int{1000, 10000, 100000}, 100000},
		{[]int{50000, 100}, 50000},
		{nil, 0},
	}
	for _, td := range testData {
		cfg := &Config{IndexSizes: td.sizes}
		if size := cfg.MaxIndexSize(); size != td.expected {
			t.Errorf("expected %d, but got %d", td.expected, size)
			continue
		}
	}
}

func TestForestSettingLabel(t *testing.T) {
	s := ForestSetting{NumTables: 8, NumHyperplanes: 12}
	expected := "tables=8, hyperplanes=12"
	if s.Label() != expected {
		t.Fatalf("expected %q, but got %q", expected, s.Label())
	}
}

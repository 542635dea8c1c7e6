package store

import (
	"context"
	"fmt"

	"github.com/saketh8887/medconnect/ent"
	"github.com/saketh8887/medconnect/ent/preference"
)

// Preference returns the stored value for key, or "" when unset.
func (s *Store) Preference(ctx context.Context, key string) (string, error) {
	p, err := s.client.Preference.Query().
		Where(preference.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("preference %s: %w", key, err)
	}
	return p.Value, nil
}

// SetPreference writes value under key, replacing any previous value.
func (s *Store) SetPreference(ctx context.Context, key, value string) error {
	err := s.client.Preference.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(preference.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

// Preferences returns every stored key-value pair.
func (s *Store) Preferences(ctx context.Context) (map[string]string, error) {
	prefs, err := s.client.Preference.Query().
		Order(ent.Asc(preference.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	out := make(map[string]string, len(prefs))
	for _, p := range prefs {
		out[p.Key] = p.Value
	}
	return out, nil
}

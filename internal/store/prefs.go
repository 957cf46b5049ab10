package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/sirupsen/logrus"
)

// Prefs is a typed view over one namespace of a KV. Missing or
// unparseable values read as the caller's default; read failures are
// logged and never returned.
type Prefs struct {
	kv        KV
	namespace string
}

// NewPrefs returns the namespace view of kv.
func NewPrefs(kv KV, namespace string) *Prefs {
	return &Prefs{kv: kv, namespace: namespace}
}

// Namespace returns the namespace name.
func (p *Prefs) Namespace() string {
	return p.namespace
}

func (p *Prefs) key(k string) string {
	return p.namespace + "/" + k
}

// raw returns the stored string for k, logging store failures.
func (p *Prefs) raw(ctx context.Context, k string) (string, bool) {
	v, ok, err := p.kv.Get(ctx, p.key(k))
	if err != nil {
		logging.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
			"namespace": p.namespace,
			"key":       k,
		}).Warn("read preference")
		return "", false
	}
	return v, ok
}

func (p *Prefs) corrupt(ctx context.Context, k, v string, err error) {
	logging.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
		"namespace": p.namespace,
		"key":       k,
		"value":     v,
	}).Warn("ignoring corrupt preference")
}

// Int returns the integer stored under k, or def.
func (p *Prefs) Int(ctx context.Context, k string, def int) int {
	v, ok := p.raw(ctx, k)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.corrupt(ctx, k, v, err)
		return def
	}
	return n
}

// SetInt stores n under k.
func (p *Prefs) SetInt(ctx context.Context, k string, n int) error {
	return p.kv.Set(ctx, p.key(k), strconv.Itoa(n))
}

// Bool returns the boolean stored under k, or def.
func (p *Prefs) Bool(ctx context.Context, k string, def bool) bool {
	v, ok := p.raw(ctx, k)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.corrupt(ctx, k, v, err)
		return def
	}
	return b
}

// SetBool stores b under k.
func (p *Prefs) SetBool(ctx context.Context, k string, b bool) error {
	return p.kv.Set(ctx, p.key(k), strconv.FormatBool(b))
}

// JSON decodes the value under k into dst. It reports false when the
// key is missing or the value does not decode; dst is then untouched.
func (p *Prefs) JSON(ctx context.Context, k string, dst any) bool {
	v, ok := p.raw(ctx, k)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(v), dst); err != nil {
		p.corrupt(ctx, k, v, err)
		return false
	}
	return true
}

// SetJSON encodes v and stores it under k.
func (p *Prefs) SetJSON(ctx context.Context, k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", p.namespace, k, err)
	}
	return p.kv.Set(ctx, p.key(k), string(b))
}

// Delete removes k.
func (p *Prefs) Delete(ctx context.Context, k string) error {
	return p.kv.Delete(ctx, p.key(k))
}

// Clear removes every key in the namespace.
func (p *Prefs) Clear(ctx context.Context) error {
	keys, err := p.kv.Keys(ctx, p.namespace+"/")
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := p.kv.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

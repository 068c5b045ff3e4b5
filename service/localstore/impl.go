package localstore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/log"
)

type impl struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// New opens the store file at path, creating parent directories as
// needed. A missing file is an empty store.
func New(c ctx.Ctx, path string) (Store, error) {
	im := &impl{
		path: path,
		data: map[string]json.RawMessage{},
	}

	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return im, nil
	} else if err != nil {
		c.WithField("err", err).WithField("path", path).Error("ioutil.ReadFile failed")
		return nil, err
	}

	if err := json.Unmarshal(raw, &im.data); err != nil {
		c.WithField("err", err).WithField("path", path).Error("json.Unmarshal failed")
		return nil, err
	}

	return im, nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	raw, ok := im.data[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("json.Marshal failed")
		return err
	}
	im.data[key] = raw
	return im.flush(c)
}

func (im *impl) Has(c ctx.Ctx, key string) (bool, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	_, ok := im.data[key]
	return ok, nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if _, ok := im.data[key]; !ok {
		return nil
	}
	delete(im.data, key)
	return im.flush(c)
}

// flush writes the whole store to a temp file and renames it over the
// current one so a crash never leaves a half-written store. Caller holds
// the lock.
func (im *impl) flush(c ctx.Ctx) error {
	raw, err := json.Marshal(im.data)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return err
	}

	dir := filepath.Dir(im.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.WithFields(log.Fields{"err": err, "dir": dir}).Error("os.MkdirAll failed")
		return err
	}

	tmp, err := ioutil.TempFile(dir, ".store-*")
	if err != nil {
		c.WithField("err", err).Error("ioutil.TempFile failed")
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		c.WithField("err", err).Error("tmp.Write failed")
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		c.WithField("err", err).Error("tmp.Close failed")
		return err
	}
	if err := os.Rename(tmp.Name(), im.path); err != nil {
		os.Remove(tmp.Name())
		c.WithFields(log.Fields{"err": err, "path": im.path}).Error("os.Rename failed")
		return err
	}
	return nil
}

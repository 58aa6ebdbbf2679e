package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/annel0/golf-editor/internal/course"
	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
)

// CourseStore представляет собой хранилище лунок поля
type CourseStore struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool

	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// ErrHoleNotFound возвращается при запросе несуществующей лунки
var ErrHoleNotFound = fmt.Errorf("лунка не найдена")

// NewCourseStore создает новое хранилище лунок
func NewCourseStore(dataPath string) (*CourseStore, error) {
	dbPath := filepath.Join(dataPath, "courses")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать компрессор: %w", err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать декомпрессор: %w", err)
	}

	return &CourseStore{
		db:           db,
		dbPath:       dbPath,
		isReady:      true,
		compressor:   compressor,
		decompressor: decompressor,
	}, nil
}

// Close закрывает хранилище данных
func (cs *CourseStore) Close() error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	if !cs.isReady {
		return nil
	}

	cs.isReady = false
	cs.compressor.Close()
	cs.decompressor.Close()
	return cs.db.Close()
}

func holeKey(courseName string, holeNum int) string {
	return fmt.Sprintf("course:%s:hole:%02d", courseName, holeNum)
}

// SaveHole сохраняет лунку под номером holeNum в поле courseName
func (cs *CourseStore) SaveHole(courseName string, holeNum int, hole *course.HoleData) error {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	if !cs.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	data, err := json.Marshal(hole)
	if err != nil {
		return fmt.Errorf("ошибка сериализации лунки: %w", err)
	}
	compressed := cs.compressor.EncodeAll(data, nil)

	key := holeKey(courseName, holeNum)
	err = cs.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), compressed)
	})
	if err != nil {
		return fmt.Errorf("ошибка записи в BadgerDB: %w", err)
	}
	return nil
}

// LoadHole загружает лунку holeNum поля courseName
func (cs *CourseStore) LoadHole(courseName string, holeNum int) (*course.HoleData, error) {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	if !cs.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	key := holeKey(courseName, holeNum)
	var compressed []byte

	err := cs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			compressed = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, ErrHoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	data, err := cs.decompressor.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки лунки: %w", err)
	}

	var hole course.HoleData
	if err := json.Unmarshal(data, &hole); err != nil {
		return nil, fmt.Errorf("ошибка десериализации лунки: %w", err)
	}
	return &hole, nil
}

// DeleteHole удаляет лунку из хранилища
func (cs *CourseStore) DeleteHole(courseName string, holeNum int) error {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	if !cs.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	key := holeKey(courseName, holeNum)
	return cs.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// ListHoles возвращает отсортированные номера лунок поля courseName
func (cs *CourseStore) ListHoles(courseName string) ([]int, error) {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	if !cs.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	prefix := []byte(fmt.Sprintf("course:%s:hole:", courseName))
	var nums []int

	err := cs.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			numStr := strings.TrimPrefix(key, string(prefix))
			num, err := strconv.Atoi(numStr)
			if err != nil {
				continue
			}
			nums = append(nums, num)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка обхода BadgerDB: %w", err)
	}

	sort.Ints(nums)
	return nums, nil
}

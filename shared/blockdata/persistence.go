package blockdata

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"BlockVision/shared/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// blockRecord é a forma serializável de um bloco (GOB).
type blockRecord struct {
	X, Y, Z    int32
	Name       string
	Properties map[string]string
}

// StructureModel representa o esquema do banco para uma estrutura salva.
type StructureModel struct {
	ID        string `gorm:"primaryKey"` // Nome da estrutura
	SizeX     int32
	SizeY     int32
	SizeZ     int32
	Data      []byte // Blocos serializados em GOB
	MTime     int64
	UpdatedAt time.Time
}

// LibraryMetadata armazena informações globais da biblioteca de estruturas.
type LibraryMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// Library é a biblioteca de estruturas persistida em SQLite.
type Library struct {
	DB *gorm.DB
}

// OpenLibrary abre (ou cria) o banco SQLite da biblioteca e roda migrações.
func OpenLibrary(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "structures.bv")

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&StructureModel{}, &LibraryMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&LibraryMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Library] Banco de dados SQLite aberto: %s", dbPath)
	return &Library{DB: db}, nil
}

// SaveStructure salva (upsert) uma estrutura na biblioteca.
func (l *Library) SaveStructure(name string, s *Structure) error {
	if l.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	var records []blockRecord
	s.Each(func(x, y, z int32, b *BlockState) {
		records = append(records, blockRecord{
			X: x, Y: y, Z: z,
			Name:       b.Name,
			Properties: b.Properties,
		})
	})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return fmt.Errorf("falha ao serializar estrutura: %w", err)
	}

	model := StructureModel{
		ID:    name,
		SizeX: s.Size.X,
		SizeY: s.Size.Y,
		SizeZ: s.Size.Z,
		Data:  buf.Bytes(),
		MTime: s.MTime,
	}

	if err := l.DB.Save(&model).Error; err != nil {
		log.Printf("[Library] ERRO ao salvar estrutura %s: %v", name, err)
		return err
	}
	return nil
}

// LoadStructure carrega uma estrutura da biblioteca pelo nome.
func (l *Library) LoadStructure(name string) (*Structure, error) {
	if l.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var model StructureModel
	if err := l.DB.First(&model, "id = ?", name).Error; err != nil {
		return nil, err
	}

	var records []blockRecord
	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(&records); err != nil {
		return nil, err
	}

	s := NewStructure(util.NewBlockCoord(model.SizeX, model.SizeY, model.SizeZ))
	s.MTime = model.MTime
	for _, r := range records {
		s.Set(r.X, r.Y, r.Z, NewBlockState(r.Name, r.Properties))
	}
	return s, nil
}

// ListStructures retorna os nomes das estruturas salvas.
func (l *Library) ListStructures() ([]string, error) {
	if l.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}
	var names []string
	if err := l.DB.Model(&StructureModel{}).Pluck("id", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Package bvnet define as mensagens trocadas entre o servidor de preview e
// o visualizador. Wire format protobuf, codificado com o pacote
// encoding/protowire (sem código gerado).
package bvnet

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Tipos de envelope.
const (
	TypeServerStatus int32 = 1
	TypeStructure    int32 = 2
	TypePong         int32 = 3
)

// Envelope embrulha qualquer mensagem com seu tipo.
type Envelope struct {
	Type    int32
	Payload []byte
}

func (m *Envelope) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Type))
	if len(m.Payload) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Payload)
	}
	return b
}

func (m *Envelope) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) {
		switch num {
		case 1:
			m.Type = int32(v)
		case 2:
			m.Payload = raw
		}
	})
}

// ServerStatus informa o estado do servidor ao visualizador.
type ServerStatus struct {
	Message string
	Ready   bool
}

func (m *ServerStatus) Marshal() []byte {
	var b []byte
	if m.Message != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Message)
	}
	if m.Ready {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	return b
}

func (m *ServerStatus) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) {
		switch num {
		case 1:
			m.Message = string(raw)
		case 2:
			m.Ready = v != 0
		}
	})
}

// PropEntry é um par chave/valor de property de bloco.
type PropEntry struct {
	Key   string
	Value string
}

// BlockEntry é um bloco posicionado dentro da estrutura.
type BlockEntry struct {
	X, Y, Z int32
	Name    string
	Props   []PropEntry
}

func (m *BlockEntry) Marshal() []byte {
	var b []byte
	b = appendVarintField(b, 1, int64(m.X))
	b = appendVarintField(b, 2, int64(m.Y))
	b = appendVarintField(b, 3, int64(m.Z))
	if m.Name != "" {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, m.Name)
	}
	for _, p := range m.Props {
		var pb []byte
		pb = protowire.AppendTag(pb, 1, protowire.BytesType)
		pb = protowire.AppendString(pb, p.Key)
		pb = protowire.AppendTag(pb, 2, protowire.BytesType)
		pb = protowire.AppendString(pb, p.Value)
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, pb)
	}
	return b
}

func (m *BlockEntry) Unmarshal(data []byte) error {
	var perr error
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) {
		switch num {
		case 1:
			m.X = int32(v)
		case 2:
			m.Y = int32(v)
		case 3:
			m.Z = int32(v)
		case 4:
			m.Name = string(raw)
		case 5:
			var p PropEntry
			if err := walkFields(raw, func(n protowire.Number, _ protowire.Type, _ uint64, r []byte) {
				switch n {
				case 1:
					p.Key = string(r)
				case 2:
					p.Value = string(r)
				}
			}); err != nil {
				perr = err
				return
			}
			m.Props = append(m.Props, p)
		}
	})
	if err != nil {
		return err
	}
	return perr
}

// StructureMessage transporta a estrutura completa para o visualizador.
type StructureMessage struct {
	SizeX, SizeY, SizeZ int32
	MTime               int64
	Blocks              []BlockEntry
}

func (m *StructureMessage) Marshal() []byte {
	var b []byte
	b = appendVarintField(b, 1, int64(m.SizeX))
	b = appendVarintField(b, 2, int64(m.SizeY))
	b = appendVarintField(b, 3, int64(m.SizeZ))
	b = appendVarintField(b, 4, m.MTime)
	for i := range m.Blocks {
		sub := m.Blocks[i].Marshal()
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b
}

func (m *StructureMessage) Unmarshal(data []byte) error {
	var berr error
	err := walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) {
		switch num {
		case 1:
			m.SizeX = int32(v)
		case 2:
			m.SizeY = int32(v)
		case 3:
			m.SizeZ = int32(v)
		case 4:
			m.MTime = int64(v)
		case 5:
			var entry BlockEntry
			if err := entry.Unmarshal(raw); err != nil {
				berr = err
				return
			}
			m.Blocks = append(m.Blocks, entry)
		}
	})
	if err != nil {
		return err
	}
	return berr
}

// appendVarintField serializa um varint pulando o valor default (proto3).
func appendVarintField(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v))
	return b
}

// walkFields percorre os campos de uma mensagem chamando fn para cada um.
// Para campos varint, v carrega o valor; para length-delimited, raw.
func walkFields(data []byte, fn func(num protowire.Number, typ protowire.Type, v uint64, raw []byte)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("tag inválida: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("varint inválido no campo %d: %w", num, protowire.ParseError(n))
			}
			fn(num, typ, v, nil)
			data = data[n:]
		case protowire.BytesType:
			raw, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("bytes inválidos no campo %d: %w", num, protowire.ParseError(n))
			}
			fn(num, typ, 0, raw)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("campo %d com wire type %d inválido: %w", num, typ, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

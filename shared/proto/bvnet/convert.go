package bvnet

import (
	"BlockVision/shared/blockdata"
	"BlockVision/shared/util"
)

// FromStructure converte a grade densa para a mensagem de wire (só blocos
// não-vazios viajam).
func FromStructure(s *blockdata.Structure) *StructureMessage {
	msg := &StructureMessage{
		SizeX: s.Size.X,
		SizeY: s.Size.Y,
		SizeZ: s.Size.Z,
		MTime: s.MTime,
	}
	s.Each(func(x, y, z int32, b *blockdata.BlockState) {
		entry := BlockEntry{X: x, Y: y, Z: z, Name: b.Name}
		for k, v := range b.Properties {
			entry.Props = append(entry.Props, PropEntry{Key: k, Value: v})
		}
		msg.Blocks = append(msg.Blocks, entry)
	})
	return msg
}

// ToStructure reconstrói a grade densa a partir da mensagem.
func (m *StructureMessage) ToStructure() *blockdata.Structure {
	s := blockdata.NewStructure(util.NewBlockCoord(m.SizeX, m.SizeY, m.SizeZ))
	s.MTime = m.MTime
	for i := range m.Blocks {
		e := &m.Blocks[i]
		state := &blockdata.BlockState{Name: e.Name}
		if len(e.Props) > 0 {
			state.Properties = make(map[string]string, len(e.Props))
			for _, p := range e.Props {
				state.Properties[p.Key] = p.Value
			}
		}
		s.Set(e.X, e.Y, e.Z, state)
	}
	return s
}

/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

// Registry maps room codes to live rooms.
type Registry struct {
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
	}
}

func (s *Registry) Get(code string) (*Room, bool) {
	room, ok := s.rooms[code]
	return room, ok
}

func (s *Registry) Put(room *Room) {
	s.rooms[room.Code] = room
}

func (s *Registry) Remove(code string) {
	delete(s.rooms, code)
}

func (s *Registry) Has(code string) bool {
	_, ok := s.rooms[code]
	return ok
}

func (s *Registry) Len() int {
	return len(s.rooms)
}

// Index maps connection IDs to participants.
type Index struct {
	participants map[string]*Participant
}

func NewIndex() *Index {
	return &Index{
		participants: make(map[string]*Participant),
	}
}

func (s *Index) Get(id string) (*Participant, bool) {
	p, ok := s.participants[id]
	return p, ok
}

func (s *Index) Put(p *Participant) {
	s.participants[p.ID] = p
}

func (s *Index) Remove(id string) {
	delete(s.participants, id)
}

func (s *Index) Len() int {
	return len(s.participants)
}

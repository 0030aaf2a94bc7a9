package util

import "sync"

// UniqueQueue é uma fila thread-safe que garante elementos únicos por chave.
// Usada para enfileirar chunks pendentes de meshing sem duplicatas.
type UniqueQueue[K comparable, V any] struct {
	mu    sync.Mutex
	keys  []K
	items map[K]V
}

// NewUniqueQueue cria uma nova UniqueQueue.
func NewUniqueQueue[K comparable, V any]() *UniqueQueue[K, V] {
	return &UniqueQueue[K, V]{
		keys:  make([]K, 0, 64),
		items: make(map[K]V),
	}
}

// Enqueue adiciona um item se a chave ainda não existir na fila.
// Se a chave já existir, o valor é substituído mas a posição na fila é mantida.
// Retorna true se foi adicionado (novo), false se foi atualizado.
func (q *UniqueQueue[K, V]) Enqueue(key K, value V) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, exists := q.items[key]
	q.items[key] = value
	if exists {
		return false
	}
	q.keys = append(q.keys, key)
	return true
}

// Dequeue remove e retorna o primeiro item da fila.
// Retorna a chave, o valor e true se havia item; zero values e false se vazia.
func (q *UniqueQueue[K, V]) Dequeue() (K, V, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.keys) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	key := q.keys[0]
	q.keys = q.keys[1:]
	value := q.items[key]
	delete(q.items, key)
	return key, value, true
}

// Len retorna o número de itens na fila.
func (q *UniqueQueue[K, V]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.keys)
}

// Contains verifica se uma chave está na fila.
func (q *UniqueQueue[K, V]) Contains(key K) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.items[key]
	return ok
}

// Clear limpa a fila.
func (q *UniqueQueue[K, V]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = q.keys[:0]
	q.items = make(map[K]V)
}

package store

import (
	"sync"

	"github.com/qs3c/subnego_go_server/internal/model"
)

// Store 进程内四张实体表（users / subscriptions / drafts / outcomes），
// 按 id 索引。生命周期等于进程生命周期：不落盘、不淘汰、不删除。
// 在 main 中构造后注入各 Service，不存在包级全局实例。
// gin 并发处理请求，读写锁保护表访问。
type Store struct {
	mu            sync.RWMutex
	users         map[string]*model.UserProfile
	subscriptions map[string]*model.Subscription
	drafts        map[string]*model.NegotiationDraft
	outcomes      map[string]*model.NegotiationOutcome
}

func New() *Store {
	return &Store{
		users:         make(map[string]*model.UserProfile),
		subscriptions: make(map[string]*model.Subscription),
		drafts:        make(map[string]*model.NegotiationDraft),
		outcomes:      make(map[string]*model.NegotiationOutcome),
	}
}

func (s *Store) PutUser(u *model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) GetUser(id string) (*model.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) PutSubscription(sub *model.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions[sub.ID] = sub
}

func (s *Store) GetSubscription(id string) (*model.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subscriptions[id]
	return sub, ok
}

// Subscriptions 返回当前全部订阅的快照切片，遍历顺序不保证
func (s *Store) Subscriptions() []*model.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subs := make([]*model.Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		subs = append(subs, sub)
	}
	return subs
}

func (s *Store) PutDraft(d *model.NegotiationDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = d
}

func (s *Store) GetDraft(id string) (*model.NegotiationDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[id]
	return d, ok
}

func (s *Store) PutOutcome(o *model.NegotiationOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes[o.ID] = o
}

func (s *Store) GetOutcome(id string) (*model.NegotiationOutcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.outcomes[id]
	return o, ok
}

package usecase

import (
	"context"
	"log"
	"sync"

	authrepo "linkfeed-backend/internal/auth/repository"
)

// GenerateJob asks for one scheduled summarization run for one user.
type GenerateJob struct {
	UserID string
}

// GenerateWorkerService runs scheduled generation jobs in the background so
// a daily trigger firing for many users doesn't serialize behind one Gemini
// call.
type GenerateWorkerService struct {
	generateUC  GenerateUsecase
	userRepo    authrepo.UserRepository
	jobQueue    chan GenerateJob
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	mu          sync.Mutex
}

func NewGenerateWorkerService(generateUC GenerateUsecase, userRepo authrepo.UserRepository, workerCount int) *GenerateWorkerService {
	if workerCount <= 0 {
		workerCount = 3
	}

	return &GenerateWorkerService{
		generateUC:  generateUC,
		userRepo:    userRepo,
		jobQueue:    make(chan GenerateJob, 100),
		workerCount: workerCount,
	}
}

// Start starts the workers. Safe to call once.
func (s *GenerateWorkerService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	for i := 0; i < s.workerCount; i++ {
		s.workerWg.Add(1)
		go s.worker(i)
	}
	s.started = true
	log.Printf("[GenerateWorker] Started %d workers", s.workerCount)
}

// Stop stops all workers gracefully.
func (s *GenerateWorkerService) Stop() {
	close(s.jobQueue)
	s.workerWg.Wait()
	log.Println("[GenerateWorker] All workers stopped")
}

func (s *GenerateWorkerService) worker(id int) {
	defer s.workerWg.Done()

	for job := range s.jobQueue {
		s.processJob(job)
	}

	log.Printf("[GenerateWorker] Worker %d stopped", id)
}

func (s *GenerateWorkerService) processJob(job GenerateJob) {
	user, err := s.userRepo.FindByID(job.UserID)
	if err != nil || user == nil {
		log.Printf("[GenerateWorker] Unknown user %s: %v", job.UserID, err)
		return
	}

	if _, err := s.generateUC.Generate(context.Background(), user); err != nil {
		log.Printf("[GenerateWorker] Generation failed for user %s: %v", job.UserID, err)
		return
	}

	log.Printf("[GenerateWorker] Generated scheduled summary for user %s", job.UserID)
}

// QueueJob adds a job to the queue without blocking. Returns false when the
// queue is full.
func (s *GenerateWorkerService) QueueJob(job GenerateJob) bool {
	select {
	case s.jobQueue <- job:
		return true
	default:
		return false
	}
}

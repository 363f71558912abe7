// Package billing забирает оплаченные заказы из биллинга и прогоняет их через расчет комиссий.
package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"time"

	"github.com/fsdevblog/groph-affiliate/internal/service"
	"github.com/fsdevblog/groph-affiliate/internal/transport/billing/client"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultLimitPerIteration uint = 100
	defaultSettleWorkers     uint = 10
)

// Processor в бесконечном цикле забирает пачки оплаченных заказов из биллинга,
// рассчитывает по ним комиссии и подтверждает обработку. Доставка at-least-once:
// неподтвержденный заказ биллинг выдаст повторно, леджер отбросит дубликат.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	settleWorkers     uint
}

// New создает новый экземпляр процессора расчета комиссий.
func New(svs Servicer, apiBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "billing",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(apiBaseURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		settleWorkers:     defaultSettleWorkers,
	}
}

// SetLimitPerIteration устанавливает кол-во заказов, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetSettleWorkers устанавливает кол-во воркеров, выполняющих расчет.
func (p *Processor) SetSettleWorkers(workers uint) *Processor {
	p.settleWorkers = workers
	return p
}

// Run запускает обработку заказов в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации цикла запрашивает у биллинга список оплаченных заказов без
//     рассчитанной комиссии. Объем списка лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через SetSettleWorkers),
//     каждый прогоняет свой заказ через сервис расчета комиссий.
//  3. Успешно обработанные заказы подтверждаются биллингу одним запросом.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"settleWorkers":     p.settleWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoEvents) {
					p.l.WithError(err).Error("process error")
				}
				time.Sleep(time.Second) // небольшая пауза чтоб не заддосить биллинг.
			}
		}
	}
}

// process выполняет цикл обработки: получение пачки заказов, расчет комиссий воркерами
// и подтверждение обработанных. Возвращает ErrNoEvents если заказов нет.
func (p *Processor) process(ctx context.Context) error {
	events, eventsErr := p.produce(ctx)
	if eventsErr != nil {
		return fmt.Errorf("process: %w", eventsErr)
	}

	results := p.runWorkers(ctx, events)

	var settledOrderIDs = make([]string, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			continue
		}
		settledOrderIDs = append(settledOrderIDs, result.Event.OrderID)
	}
	if len(settledOrderIDs) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	if ackErr := p.client.AckPaidEvents(reqCtx, settledOrderIDs); ackErr != nil {
		return fmt.Errorf("process: %s", ackErr.Error())
	}
	return nil
}

// workerResult представляет результат расчета комиссии по одному заказу.
type workerResult struct {
	WorkerID uint
	Event    *client.PaidEvent
	Error    error
}

// runWorkers запускает параллельных воркеров для расчета комиссий и ожидает конца их работы.
// Реализует паттерн fan-out/fan-in для параллельной обработки.
func (p *Processor) runWorkers(ctx context.Context, events []client.PaidEvent) []workerResult {
	var taskCh = make(chan *client.PaidEvent, len(events))

	for _, event := range events {
		taskCh <- &event
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.settleWorkers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(events))

	for i := range p.settleWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(events))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":  result.WorkerID,
			"orderID": result.Event.OrderID,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("settle commission for order")
		} else {
			l.Info("Success")
		}
		results = append(results, *result)
	}
	return results
}

// worker обрабатывает заказы из канала и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *client.PaidEvent,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask прогоняет заказ через сервис расчета. Заказ без привязки, при
// выключенных правилах или уже рассчитанный - штатный no-op, подтверждаем его как обработанный.
func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *client.PaidEvent) *workerResult {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	_, err := p.svs.Settle(reqCtx, service.PaidEvent{
		InviteeID:     task.InviteeID,
		OrderID:       task.OrderID,
		OrderAmount:   task.OrderAmount,
		RedeemedValue: task.RedeemedValue,
	})
	return &workerResult{
		WorkerID: workerID,
		Event:    task,
		Error:    err,
	}
}

// produce получает пачку оплаченных заказов, ожидающих расчета. В случае ответа 429
// ждет N секунд указанные в заголовке ответа. Возвращает ErrNoEvents, если заказов нет.
func (p *Processor) produce(ctx context.Context) ([]client.PaidEvent, error) {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		events, eventsErr := p.client.FetchPaidEvents(reqCtx, p.limitPerIteration)
		cancel()

		if eventsErr != nil {
			var tooManyReq *client.TooManyRequestError
			if errors.As(eventsErr, &tooManyReq) {
				// Проверяем отмену контекста перед спячкой
				select {
				case <-ctx.Done():
					return nil, ctx.Err() //nolint:wrapcheck
				case <-time.After(tooManyReq.RetryAfter):
					// После паузы делаем повторную попытку
					continue
				}
			}
			return nil, fmt.Errorf("produce: %w", eventsErr)
		}

		if len(events) == 0 {
			return nil, ErrNoEvents
		}
		return events, nil
	}
}

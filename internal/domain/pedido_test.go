package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from PedidoStatus
		to   PedidoStatus
		want bool
	}{
		{"briefing to quote sent", StatusBriefing, StatusOrcamentoEnviado, true},
		{"briefing cannot skip to production", StatusBriefing, StatusEmConfeccao, false},
		{"quote sent to approved", StatusOrcamentoEnviado, StatusOrcamentoAprovado, true},
		{"quote sent to refused", StatusOrcamentoEnviado, StatusRecusado, true},
		{"approved to awaiting payment", StatusOrcamentoAprovado, StatusAguardandoPagamento, true},
		{"approved straight to production", StatusOrcamentoAprovado, StatusEmConfeccao, true},
		{"awaiting payment to confirmed", StatusAguardandoPagamento, StatusPagamentoConfirmado, true},
		{"payment confirmed to production", StatusPagamentoConfirmado, StatusEmConfeccao, true},
		{"production to client review", StatusEmConfeccao, StatusAguardandoAprovacaoCliente, true},
		{"client review to revisions", StatusAguardandoAprovacaoCliente, StatusEmAjustes, true},
		{"client review to final payment", StatusAguardandoAprovacaoCliente, StatusAguardandoPagamentoFinal, true},
		{"client review to finished", StatusAguardandoAprovacaoCliente, StatusFinalizado, true},
		{"revisions back to production", StatusEmAjustes, StatusEmConfeccao, true},
		{"final payment to finished", StatusAguardandoPagamentoFinal, StatusFinalizado, true},
		{"no backwards move", StatusEmConfeccao, StatusBriefing, false},
		{"no skipping review", StatusEmConfeccao, StatusFinalizado, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestCanTransitionCancelamento(t *testing.T) {
	nonTerminal := []PedidoStatus{
		StatusBriefing, StatusOrcamentoEnviado, StatusOrcamentoAprovado,
		StatusAguardandoPagamento, StatusPagamentoConfirmado, StatusEmConfeccao,
		StatusAguardandoAprovacaoCliente, StatusEmAjustes, StatusAguardandoPagamentoFinal,
	}
	for _, from := range nonTerminal {
		if !CanTransition(from, StatusCancelado) {
			t.Errorf("expected %s -> cancelado to be legal", from)
		}
	}

	for _, from := range []PedidoStatus{StatusFinalizado, StatusCancelado, StatusRecusado} {
		if CanTransition(from, StatusCancelado) {
			t.Errorf("terminal status %s must not cancel", from)
		}
	}
}

func TestIsTerminalAcceptsNothing(t *testing.T) {
	all := []PedidoStatus{
		StatusBriefing, StatusOrcamentoEnviado, StatusOrcamentoAprovado,
		StatusAguardandoPagamento, StatusPagamentoConfirmado, StatusEmConfeccao,
		StatusAguardandoAprovacaoCliente, StatusEmAjustes, StatusAguardandoPagamentoFinal,
		StatusFinalizado, StatusCancelado, StatusRecusado,
	}
	for _, from := range []PedidoStatus{StatusFinalizado, StatusCancelado, StatusRecusado} {
		if !from.IsTerminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range all {
			if CanTransition(from, to) {
				t.Errorf("terminal %s must not transition to %s", from, to)
			}
		}
	}
}

func TestValorLiquido(t *testing.T) {
	valor := int64(100_00)

	p := &Pedido{}
	if got := p.ValorLiquido(); got != 0 {
		t.Fatalf("pedido without orcamento: got %d, want 0", got)
	}

	p = &Pedido{ValorOrcado: &valor, DiscountAmount: 30_00}
	if got := p.ValorLiquido(); got != 70_00 {
		t.Fatalf("got %d, want 7000", got)
	}

	p = &Pedido{ValorOrcado: &valor, DiscountAmount: 150_00}
	if got := p.ValorLiquido(); got != 0 {
		t.Fatalf("discount above total must floor at zero, got %d", got)
	}
}

func TestCanTransitionRevision(t *testing.T) {
	legal := [][2]RevisionStatus{
		{RevisionPending, RevisionInProgress},
		{RevisionPending, RevisionCompleted},
		{RevisionPending, RevisionRejected},
		{RevisionInProgress, RevisionCompleted},
		{RevisionInProgress, RevisionRejected},
	}
	for _, pair := range legal {
		if !CanTransitionRevision(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be legal", pair[0], pair[1])
		}
	}

	illegal := [][2]RevisionStatus{
		{RevisionCompleted, RevisionInProgress},
		{RevisionCompleted, RevisionRejected},
		{RevisionRejected, RevisionCompleted},
		{RevisionInProgress, RevisionPending},
	}
	for _, pair := range illegal {
		if CanTransitionRevision(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be illegal", pair[0], pair[1])
		}
	}
}

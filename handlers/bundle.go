package handlers

// HandlerBundle aggregates every handler the router needs, wired once in
// main.
type HandlerBundle struct {
	Auth     *AuthHandler
	Order    *OrderHandler
	Orders   *OrdersHandler
	Address  *AddressHandler
	Workflow *WorkflowHandler
	Team     *TeamHandler
}

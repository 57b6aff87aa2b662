package domain

// Tab identifies a dashboard section.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabMaterials Tab = "materials"
	TabUniBrotos Tab = "unibrotos"
	TabMyOrders  Tab = "my_orders"
	TabNewOrder  Tab = "new_order"
	TabInvite    Tab = "invite"
	TabBusiness  Tab = "business"
	TabFinancial Tab = "financial"
)

// DefaultTab is where the dashboard lands after any change of user.
const DefaultTab = TabOverview

// MenuSection groups tabs in the side menu.
type MenuSection string

const (
	SectionMain        MenuSection = "main"
	SectionExpansion   MenuSection = "expansion"
	SectionDistributor MenuSection = "distributor"
)

// TabItem describes one entry of the side menu.
type TabItem struct {
	ID      Tab         `json:"id"`
	Label   string      `json:"label"`
	Section MenuSection `json:"section"`
}

var baseTabs = []TabItem{
	{ID: TabOverview, Label: "Visão Geral", Section: SectionMain},
	{ID: TabMaterials, Label: "Materiais de Apoio", Section: SectionMain},
	{ID: TabUniBrotos, Label: "UniBrotos", Section: SectionMain},
	{ID: TabMyOrders, Label: "Meus Pedidos", Section: SectionMain},
	{ID: TabNewOrder, Label: "Fazer Pedido", Section: SectionMain},
	{ID: TabInvite, Label: "Convidar Consultor", Section: SectionExpansion},
}

var distributorTabs = []TabItem{
	{ID: TabBusiness, Label: "Meu Negócio", Section: SectionDistributor},
	{ID: TabFinancial, Label: "Financeiro", Section: SectionDistributor},
}

// MenuFor returns the menu entries visible to role, in display order.
// Unknown roles get the base menu.
func MenuFor(role Role) []TabItem {
	items := make([]TabItem, 0, len(baseTabs)+len(distributorTabs))
	items = append(items, baseTabs...)
	if role.IsDistributor() {
		items = append(items, distributorTabs...)
	}
	return items
}

// VisibleTabs returns the set of tabs role may select.
func VisibleTabs(role Role) map[Tab]struct{} {
	items := MenuFor(role)
	set := make(map[Tab]struct{}, len(items))
	for _, it := range items {
		set[it.ID] = struct{}{}
	}
	return set
}

// CanView reports whether tab is part of role's menu.
func (t Tab) CanView(role Role) bool {
	_, ok := VisibleTabs(role)[t]
	return ok
}

// LookupTab returns the menu entry for t regardless of role.
func LookupTab(t Tab) (TabItem, bool) {
	for _, it := range baseTabs {
		if it.ID == t {
			return it, true
		}
	}
	for _, it := range distributorTabs {
		if it.ID == t {
			return it, true
		}
	}
	return TabItem{}, false
}

// Navigation holds the dashboard's active tab.
type Navigation struct {
	ActiveTab Tab `json:"active_tab"`
}

// NewNavigation returns navigation positioned on DefaultTab.
func NewNavigation() Navigation {
	return Navigation{ActiveTab: DefaultTab}
}

// Select moves to candidate when role may view it. Otherwise the state is
// left untouched and false is returned.
func (n *Navigation) Select(role Role, candidate Tab) bool {
	if !candidate.CanView(role) {
		return false
	}
	n.ActiveTab = candidate
	return true
}

// Reset returns to DefaultTab.
func (n *Navigation) Reset() {
	n.ActiveTab = DefaultTab
}

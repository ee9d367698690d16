package sdamgia

// The site's markup contract, kept in one place since class names can
// change out from under us.
const (
	selProblemContainer = "div.prob_maindiv"
	selProblemBody      = "div.pbody"
	selSolution         = "div.solution"
	selAnswer           = "div.answer"
	selAnalogBlock      = "div.minor"
	selProblemNums      = "span.prob_nums"
	selFormulaImage     = "img.tex"
	selImage            = "img"
	selAnchor           = "a"
	selCatalogCategory  = "div.cat_category"
	selCatalogName      = "b.cat_name"
	selCatalogChildren  = "div.cat_children"
	selCategoryName     = "a.cat_name"

	attrCategoryID  = "data-id"
	attrImageSource = "src"
)

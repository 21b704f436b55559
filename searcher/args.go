package searcher

// Hyperparameters for MCTS

const DefaultExploration = 1.41 // Exploration constant
const DefaultIterations = 100   // Search episodes per decision
